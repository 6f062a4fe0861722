package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"backoffice/internal/cache"
	apperrors "backoffice/internal/errors"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

const (
	menuCacheKey = "public:menu"
	menuCacheTTL = 60 * time.Second
)

// MenuItemPatch is a partial update for one menu item. Nil fields are
// left untouched; a patch without an ID is skipped, never an error.
type MenuItemPatch struct {
	ID             *uint            `json:"id"`
	MenuCategoryID *uint            `json:"menu_category_id"`
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	Price          *decimal.Decimal `json:"price"`
	Image          *string          `json:"image"`
	DisplayOrder   *int             `json:"display_order"`
	IsActive       *bool            `json:"is_active"`
}

// MenuService handles menu items and menu categories.
type MenuService interface {
	ListItems(ctx context.Context, filter repository.ListFilter) ([]model.MenuItem, int64, error)
	GetItem(ctx context.Context, id uint) (*model.MenuItem, error)
	CreateItem(ctx context.Context, item *model.MenuItem) error
	UpdateItem(ctx context.Context, item *model.MenuItem) error
	DeleteItem(ctx context.Context, id uint) error
	BulkUpdateItems(ctx context.Context, patches []MenuItemPatch) (updated int, err error)

	ListCategories(ctx context.Context, filter repository.ListFilter) ([]model.MenuCategory, int64, error)
	GetCategory(ctx context.Context, id uint) (*model.MenuCategory, error)
	CreateCategory(ctx context.Context, category *model.MenuCategory) error
	UpdateCategory(ctx context.Context, category *model.MenuCategory) error
	DeleteCategory(ctx context.Context, id uint) error

	PublicMenu(ctx context.Context) ([]model.MenuCategory, error)
}

type menuService struct {
	menuRepo repository.MenuRepository
	cache    *cache.Client
}

// NewMenuService creates a new menu service.
func NewMenuService(menuRepo repository.MenuRepository, cacheClient *cache.Client) MenuService {
	return &menuService{menuRepo: menuRepo, cache: cacheClient}
}

func (s *menuService) ListItems(ctx context.Context, filter repository.ListFilter) ([]model.MenuItem, int64, error) {
	return s.menuRepo.ListItems(ctx, filter)
}

func (s *menuService) GetItem(ctx context.Context, id uint) (*model.MenuItem, error) {
	item, err := s.menuRepo.FindItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find menu item: %w", err)
	}
	return item, nil
}

func (s *menuService) CreateItem(ctx context.Context, item *model.MenuItem) error {
	if item.DisplayOrder == 0 {
		max, err := s.menuRepo.MaxItemDisplayOrder(ctx)
		if err != nil {
			return fmt.Errorf("next display order: %w", err)
		}
		item.DisplayOrder = max + 1
	}
	if err := s.menuRepo.CreateItem(ctx, item); err != nil {
		return err
	}
	s.invalidateMenu(ctx)
	return nil
}

func (s *menuService) UpdateItem(ctx context.Context, item *model.MenuItem) error {
	if err := s.menuRepo.UpdateItem(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("update menu item: %w", err)
	}
	s.invalidateMenu(ctx)
	return nil
}

func (s *menuService) DeleteItem(ctx context.Context, id uint) error {
	if err := s.menuRepo.DeleteItem(ctx, id); err != nil {
		return err
	}
	s.invalidateMenu(ctx)
	return nil
}

// BulkUpdateItems applies partial patches one row at a time. Patches
// without an id are skipped; a patch whose id matches no row counts as a
// miss, not a failure. A store error mid-batch stops the loop with the
// rows updated so far already committed.
func (s *menuService) BulkUpdateItems(ctx context.Context, patches []MenuItemPatch) (int, error) {
	updated := 0
	for _, patch := range patches {
		if patch.ID == nil || *patch.ID == 0 {
			continue
		}
		fields := patch.fields()
		if len(fields) == 0 {
			continue
		}
		affected, err := s.menuRepo.UpdateItemFields(ctx, *patch.ID, fields)
		if err != nil {
			return updated, fmt.Errorf("update menu item %d: %w", *patch.ID, err)
		}
		if affected > 0 {
			updated++
		}
	}
	s.invalidateMenu(ctx)
	return updated, nil
}

func (p MenuItemPatch) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.MenuCategoryID != nil {
		fields["menu_category_id"] = *p.MenuCategoryID
	}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.Image != nil {
		fields["image"] = *p.Image
	}
	if p.DisplayOrder != nil {
		fields["display_order"] = *p.DisplayOrder
	}
	if p.IsActive != nil {
		fields["is_active"] = *p.IsActive
	}
	return fields
}

func (s *menuService) ListCategories(ctx context.Context, filter repository.ListFilter) ([]model.MenuCategory, int64, error) {
	return s.menuRepo.ListCategories(ctx, filter)
}

func (s *menuService) GetCategory(ctx context.Context, id uint) (*model.MenuCategory, error) {
	category, err := s.menuRepo.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find menu category: %w", err)
	}
	return category, nil
}

func (s *menuService) CreateCategory(ctx context.Context, category *model.MenuCategory) error {
	if category.DisplayOrder == 0 {
		max, err := s.menuRepo.MaxCategoryDisplayOrder(ctx)
		if err != nil {
			return fmt.Errorf("next display order: %w", err)
		}
		category.DisplayOrder = max + 1
	}
	if err := s.menuRepo.CreateCategory(ctx, category); err != nil {
		return err
	}
	s.invalidateMenu(ctx)
	return nil
}

func (s *menuService) UpdateCategory(ctx context.Context, category *model.MenuCategory) error {
	if err := s.menuRepo.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("update menu category: %w", err)
	}
	s.invalidateMenu(ctx)
	return nil
}

// DeleteCategory refuses to cascade while menu items still reference it.
func (s *menuService) DeleteCategory(ctx context.Context, id uint) error {
	count, err := s.menuRepo.CountItemsByCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("count items in menu category: %w", err)
	}
	if count > 0 {
		return apperrors.ErrMenuCategoryInUse
	}
	if err := s.menuRepo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.invalidateMenu(ctx)
	return nil
}

// PublicMenu returns the storefront menu, served from the fail-safe cache
// when warm. The database remains authoritative.
func (s *menuService) PublicMenu(ctx context.Context) ([]model.MenuCategory, error) {
	var cached []model.MenuCategory
	if s.cache.GetJSON(ctx, menuCacheKey, &cached) {
		return cached, nil
	}

	menu, err := s.menuRepo.ActiveMenu(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, menuCacheKey, menu, menuCacheTTL)
	return menu, nil
}

func (s *menuService) invalidateMenu(ctx context.Context) {
	_ = s.cache.Delete(ctx, menuCacheKey)
}
