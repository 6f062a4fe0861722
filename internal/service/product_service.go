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

// ProductService handles catalog product operations.
type ProductService interface {
	List(ctx context.Context, filter repository.ListFilter) ([]model.Product, int64, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) List(ctx context.Context, filter repository.ListFilter) ([]model.Product, int64, error) {
	return s.productRepo.List(ctx, filter)
}

// Get returns nil (not an error) for an unknown id; callers translate
// that into an empty success response.
func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

// Create assigns display order max+1 when the caller leaves it zero.
func (s *productService) Create(ctx context.Context, product *model.Product) error {
	if product.DisplayOrder == 0 {
		max, err := s.productRepo.MaxDisplayOrder(ctx)
		if err != nil {
			return fmt.Errorf("next display order: %w", err)
		}
		product.DisplayOrder = max + 1
	}
	return s.productRepo.Create(ctx, product)
}

// Update is full-row replace: absent optional fields land as their zero
// values, not as "leave unchanged". Derived rating/reviews are preserved
// from the stored row so an admin edit cannot clobber the aggregates.
func (s *productService) Update(ctx context.Context, product *model.Product) error {
	existing, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("find product: %w", err)
	}
	product.Rating = existing.Rating
	product.Reviews = existing.Reviews
	product.CreatedAt = existing.CreatedAt
	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	return s.productRepo.Delete(ctx, id)
}
