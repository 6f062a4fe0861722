package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "backoffice/internal/errors"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

// CategoryService handles product category operations.
type CategoryService interface {
	List(ctx context.Context, filter repository.ListFilter) ([]model.Category, int64, error)
	Get(ctx context.Context, id uint) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, productRepo: productRepo}
}

func (s *categoryService) List(ctx context.Context, filter repository.ListFilter) ([]model.Category, int64, error) {
	return s.categoryRepo.List(ctx, filter)
}

func (s *categoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Create(ctx context.Context, category *model.Category) error {
	if category.DisplayOrder == 0 {
		max, err := s.categoryRepo.MaxDisplayOrder(ctx)
		if err != nil {
			return fmt.Errorf("next display order: %w", err)
		}
		category.DisplayOrder = max + 1
	}
	return s.categoryRepo.Create(ctx, category)
}

func (s *categoryService) Update(ctx context.Context, category *model.Category) error {
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete refuses to cascade: a category with products returns a conflict
// instead of orphaning or deleting them.
func (s *categoryService) Delete(ctx context.Context, id uint) error {
	count, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("count products in category: %w", err)
	}
	if count > 0 {
		return apperrors.ErrCategoryInUse
	}
	return s.categoryRepo.Delete(ctx, id)
}
