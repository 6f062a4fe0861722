package repository

import (
	"context"

	"gorm.io/gorm"

	"backoffice/internal/model"
)

// MenuRepository defines menu item and menu category persistence operations.
type MenuRepository interface {
	ListItems(ctx context.Context, filter ListFilter) ([]model.MenuItem, int64, error)
	FindItemByID(ctx context.Context, id uint) (*model.MenuItem, error)
	CreateItem(ctx context.Context, item *model.MenuItem) error
	UpdateItem(ctx context.Context, item *model.MenuItem) error
	UpdateItemFields(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)
	DeleteItem(ctx context.Context, id uint) error
	MaxItemDisplayOrder(ctx context.Context) (int, error)
	CountItemsByCategory(ctx context.Context, categoryID uint) (int64, error)

	ListCategories(ctx context.Context, filter ListFilter) ([]model.MenuCategory, int64, error)
	FindCategoryByID(ctx context.Context, id uint) (*model.MenuCategory, error)
	CreateCategory(ctx context.Context, category *model.MenuCategory) error
	UpdateCategory(ctx context.Context, category *model.MenuCategory) error
	DeleteCategory(ctx context.Context, id uint) error
	MaxCategoryDisplayOrder(ctx context.Context) (int, error)

	ActiveMenu(ctx context.Context) ([]model.MenuCategory, error)
}

type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository.
func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) filteredItems(ctx context.Context, filter ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.MenuItem{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if filter.CategoryID != 0 {
		q = q.Where("menu_category_id = ?", filter.CategoryID)
	}
	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}
	return q
}

func (r *menuRepository) ListItems(ctx context.Context, filter ListFilter) ([]model.MenuItem, int64, error) {
	var total int64
	if err := r.filteredItems(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.MenuItem
	err := r.filteredItems(ctx, filter).
		Order("display_order ASC, id ASC").
		Offset(filter.offset()).
		Limit(filter.limit()).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *menuRepository) FindItemByID(ctx context.Context, id uint) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) CreateItem(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) UpdateItem(ctx context.Context, item *model.MenuItem) error {
	res := r.db.WithContext(ctx).Model(&model.MenuItem{}).
		Where("id = ?", item.ID).
		Select("*").Omit("id", "created_at").
		Updates(item)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateItemFields applies a partial patch and reports affected rows, so a
// bulk update can count hits without failing on unknown ids.
func (r *menuRepository) UpdateItemFields(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.MenuItem{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *menuRepository) DeleteItem(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.MenuItem{}, id).Error
}

func (r *menuRepository) MaxItemDisplayOrder(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&model.MenuItem{}).
		Select("COALESCE(MAX(display_order), 0)").Scan(&max).Error
	return max, err
}

func (r *menuRepository) CountItemsByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MenuItem{}).
		Where("menu_category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *menuRepository) filteredCategories(ctx context.Context, filter ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.MenuCategory{})
	if filter.Search != "" {
		q = q.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}
	return q
}

func (r *menuRepository) ListCategories(ctx context.Context, filter ListFilter) ([]model.MenuCategory, int64, error) {
	var total int64
	if err := r.filteredCategories(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []model.MenuCategory
	err := r.filteredCategories(ctx, filter).
		Order("display_order ASC, id ASC").
		Offset(filter.offset()).
		Limit(filter.limit()).
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *menuRepository) FindCategoryByID(ctx context.Context, id uint) (*model.MenuCategory, error) {
	var category model.MenuCategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *menuRepository) CreateCategory(ctx context.Context, category *model.MenuCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *menuRepository) UpdateCategory(ctx context.Context, category *model.MenuCategory) error {
	res := r.db.WithContext(ctx).Model(&model.MenuCategory{}).
		Where("id = ?", category.ID).
		Select("*").Omit("id", "created_at").
		Updates(category)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *menuRepository) DeleteCategory(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.MenuCategory{}, id).Error
}

func (r *menuRepository) MaxCategoryDisplayOrder(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&model.MenuCategory{}).
		Select("COALESCE(MAX(display_order), 0)").Scan(&max).Error
	return max, err
}

// ActiveMenu returns active categories with their active items, both in
// display order, for the public menu page.
func (r *menuRepository) ActiveMenu(ctx context.Context) ([]model.MenuCategory, error) {
	var categories []model.MenuCategory
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC, id ASC").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("display_order ASC, id ASC")
		}).
		Find(&categories).Error
	return categories, err
}
