package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "backoffice/internal/errors"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

const minCommentLength = 5

// ReviewInput is a public review submission.
type ReviewInput struct {
	ProductID    uint   `json:"product_id" validate:"required"`
	UserID       *uint  `json:"user_id"`
	Rating       int    `json:"rating" validate:"required"`
	Comment      string `json:"comment" validate:"required"`
	ReviewerName string `json:"reviewer_name" validate:"required"`
}

// ReviewService handles review submission and moderation. All writes that
// change the active review set go through the aggregate-maintaining
// repository transaction.
type ReviewService interface {
	Submit(ctx context.Context, input ReviewInput) (*model.Review, error)
	ListPublic(ctx context.Context, productID uint, page, perPage int) ([]model.Review, int64, error)
	ListAdmin(ctx context.Context, filter repository.ListFilter) ([]model.Review, int64, error)
	MarkHelpful(ctx context.Context, id uint) error
	SetActive(ctx context.Context, id uint, active bool) error
	Delete(ctx context.Context, id uint) error
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

// NewReviewService creates a new review service.
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, productRepo: productRepo}
}

// Submit validates the input, then inserts the review and recomputes the
// product aggregates in one transaction. Validation failures happen
// before any write, so a rejected review leaves no trace.
func (s *reviewService) Submit(ctx context.Context, input ReviewInput) (*model.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.ErrInvalidRating
	}
	if strings.TrimSpace(input.ReviewerName) == "" || len(strings.TrimSpace(input.Comment)) < minCommentLength {
		return nil, apperrors.ErrInvalidReview
	}

	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	if !product.IsActive {
		return nil, apperrors.ErrNotFound
	}

	review := &model.Review{
		ProductID:    input.ProductID,
		UserID:       input.UserID,
		Rating:       input.Rating,
		Comment:      strings.TrimSpace(input.Comment),
		ReviewerName: strings.TrimSpace(input.ReviewerName),
		IsActive:     true,
	}
	if err := s.reviewRepo.CreateWithAggregate(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

// ListPublic returns active reviews for one product, newest first.
func (s *reviewService) ListPublic(ctx context.Context, productID uint, page, perPage int) ([]model.Review, int64, error) {
	active := true
	return s.reviewRepo.List(ctx, repository.ListFilter{
		ProductID: productID,
		Active:    &active,
		Page:      page,
		PerPage:   perPage,
	})
}

func (s *reviewService) ListAdmin(ctx context.Context, filter repository.ListFilter) ([]model.Review, int64, error) {
	return s.reviewRepo.List(ctx, filter)
}

// MarkHelpful bumps one review's helpful counter. Product aggregates are
// not recomputed.
func (s *reviewService) MarkHelpful(ctx context.Context, id uint) error {
	affected, err := s.reviewRepo.IncrementHelpful(ctx, id)
	if err != nil {
		return fmt.Errorf("mark review helpful: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *reviewService) SetActive(ctx context.Context, id uint, active bool) error {
	if err := s.reviewRepo.SetActiveWithAggregate(ctx, id, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("set review active: %w", err)
	}
	return nil
}

func (s *reviewService) Delete(ctx context.Context, id uint) error {
	if err := s.reviewRepo.DeleteWithAggregate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
