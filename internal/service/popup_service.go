package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "backoffice/internal/errors"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

// PopupService handles promotional popup operations.
type PopupService interface {
	List(ctx context.Context, filter repository.ListFilter) ([]model.Popup, int64, error)
	ListLive(ctx context.Context) ([]model.Popup, error)
	Get(ctx context.Context, id uint) (*model.Popup, error)
	Create(ctx context.Context, popup *model.Popup) error
	Update(ctx context.Context, popup *model.Popup) error
	Delete(ctx context.Context, id uint) error
}

type popupService struct {
	popupRepo repository.PopupRepository
}

// NewPopupService creates a new popup service.
func NewPopupService(popupRepo repository.PopupRepository) PopupService {
	return &popupService{popupRepo: popupRepo}
}

func (s *popupService) List(ctx context.Context, filter repository.ListFilter) ([]model.Popup, int64, error) {
	return s.popupRepo.List(ctx, filter)
}

// ListLive returns the popups the storefront should show right now:
// active and inside their scheduling window.
func (s *popupService) ListLive(ctx context.Context) ([]model.Popup, error) {
	return s.popupRepo.ListLive(ctx, time.Now())
}

func (s *popupService) Get(ctx context.Context, id uint) (*model.Popup, error) {
	popup, err := s.popupRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find popup: %w", err)
	}
	return popup, nil
}

func (s *popupService) Create(ctx context.Context, popup *model.Popup) error {
	if popup.DisplayOrder == 0 {
		max, err := s.popupRepo.MaxDisplayOrder(ctx)
		if err != nil {
			return fmt.Errorf("next display order: %w", err)
		}
		popup.DisplayOrder = max + 1
	}
	return s.popupRepo.Create(ctx, popup)
}

func (s *popupService) Update(ctx context.Context, popup *model.Popup) error {
	if err := s.popupRepo.Update(ctx, popup); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("update popup: %w", err)
	}
	return nil
}

func (s *popupService) Delete(ctx context.Context, id uint) error {
	return s.popupRepo.Delete(ctx, id)
}
