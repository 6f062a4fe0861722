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

// CustomerService exposes storefront customers to the back office: read
// and active-flag update only.
type CustomerService interface {
	List(ctx context.Context, filter repository.ListFilter) ([]model.User, int64, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	SetActive(ctx context.Context, id uint, active bool) error
}

type customerService struct {
	userRepo repository.UserRepository
}

// NewCustomerService creates a new customer service.
func NewCustomerService(userRepo repository.UserRepository) CustomerService {
	return &customerService{userRepo: userRepo}
}

func (s *customerService) List(ctx context.Context, filter repository.ListFilter) ([]model.User, int64, error) {
	return s.userRepo.List(ctx, filter)
}

func (s *customerService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return user, nil
}

func (s *customerService) SetActive(ctx context.Context, id uint, active bool) error {
	affected, err := s.userRepo.SetActive(ctx, id, active)
	if err != nil {
		return fmt.Errorf("set customer active: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
