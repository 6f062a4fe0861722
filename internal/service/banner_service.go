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

// BannerService handles storefront banner operations.
type BannerService interface {
	List(ctx context.Context, filter repository.ListFilter) ([]model.Banner, int64, error)
	ListActive(ctx context.Context) ([]model.Banner, error)
	Get(ctx context.Context, id uint) (*model.Banner, error)
	Create(ctx context.Context, banner *model.Banner) error
	Update(ctx context.Context, banner *model.Banner) error
	Delete(ctx context.Context, id uint) error
	Reorder(ctx context.Context, ids []uint) (updated int, err error)
}

type bannerService struct {
	bannerRepo repository.BannerRepository
}

// NewBannerService creates a new banner service.
func NewBannerService(bannerRepo repository.BannerRepository) BannerService {
	return &bannerService{bannerRepo: bannerRepo}
}

func (s *bannerService) List(ctx context.Context, filter repository.ListFilter) ([]model.Banner, int64, error) {
	return s.bannerRepo.List(ctx, filter)
}

func (s *bannerService) ListActive(ctx context.Context) ([]model.Banner, error) {
	return s.bannerRepo.ListActive(ctx)
}

func (s *bannerService) Get(ctx context.Context, id uint) (*model.Banner, error) {
	banner, err := s.bannerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find banner: %w", err)
	}
	return banner, nil
}

func (s *bannerService) Create(ctx context.Context, banner *model.Banner) error {
	if banner.DisplayOrder == 0 {
		max, err := s.bannerRepo.MaxDisplayOrder(ctx)
		if err != nil {
			return fmt.Errorf("next display order: %w", err)
		}
		banner.DisplayOrder = max + 1
	}
	return s.bannerRepo.Create(ctx, banner)
}

func (s *bannerService) Update(ctx context.Context, banner *model.Banner) error {
	if err := s.bannerRepo.Update(ctx, banner); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("update banner: %w", err)
	}
	return nil
}

func (s *bannerService) Delete(ctx context.Context, id uint) error {
	return s.bannerRepo.Delete(ctx, id)
}

// Reorder writes each id's position in the list as its display order.
// Best effort, one statement per row: a failure mid-list leaves earlier
// rows reordered and later rows untouched. Admin-triggered and idempotent,
// so the client simply retries.
func (s *bannerService) Reorder(ctx context.Context, ids []uint) (int, error) {
	updated := 0
	for idx, id := range ids {
		if err := s.bannerRepo.SetDisplayOrder(ctx, id, idx); err != nil {
			return updated, fmt.Errorf("reorder banner %d: %w", id, err)
		}
		updated++
	}
	return updated, nil
}
