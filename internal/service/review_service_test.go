package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "backoffice/internal/errors"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

func TestReviewService_Submit(t *testing.T) {
	tests := []struct {
		name          string
		input         ReviewInput
		setupMock     func(*MockReviewRepository, *MockProductRepository)
		expectedError error
	}{
		{
			name: "successful submission",
			input: ReviewInput{
				ProductID:    1,
				Rating:       4,
				Comment:      "Really good stuff",
				ReviewerName: "Asha",
			},
			setupMock: func(mReview *MockReviewRepository, mProduct *MockProductRepository) {
				mProduct.On("FindByID", mock.Anything, uint(1)).Return(&model.Product{ID: 1, IsActive: true}, nil)
				mReview.On("CreateWithAggregate", mock.Anything, mock.AnythingOfType("*model.Review")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "rating below range",
			input: ReviewInput{
				ProductID:    1,
				Rating:       0,
				Comment:      "Really good stuff",
				ReviewerName: "Asha",
			},
			setupMock:     func(mReview *MockReviewRepository, mProduct *MockProductRepository) {},
			expectedError: apperrors.ErrInvalidRating,
		},
		{
			name: "rating above range",
			input: ReviewInput{
				ProductID:    1,
				Rating:       6,
				Comment:      "Really good stuff",
				ReviewerName: "Asha",
			},
			setupMock:     func(mReview *MockReviewRepository, mProduct *MockProductRepository) {},
			expectedError: apperrors.ErrInvalidRating,
		},
		{
			name: "blank reviewer name",
			input: ReviewInput{
				ProductID:    1,
				Rating:       4,
				Comment:      "Really good stuff",
				ReviewerName: "   ",
			},
			setupMock:     func(mReview *MockReviewRepository, mProduct *MockProductRepository) {},
			expectedError: apperrors.ErrInvalidReview,
		},
		{
			name: "comment too short after trim",
			input: ReviewInput{
				ProductID:    1,
				Rating:       4,
				Comment:      "  ok  ",
				ReviewerName: "Asha",
			},
			setupMock:     func(mReview *MockReviewRepository, mProduct *MockProductRepository) {},
			expectedError: apperrors.ErrInvalidReview,
		},
		{
			name: "unknown product",
			input: ReviewInput{
				ProductID:    99,
				Rating:       4,
				Comment:      "Really good stuff",
				ReviewerName: "Asha",
			},
			setupMock: func(mReview *MockReviewRepository, mProduct *MockProductRepository) {
				mProduct.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrNotFound,
		},
		{
			name: "inactive product",
			input: ReviewInput{
				ProductID:    2,
				Rating:       4,
				Comment:      "Really good stuff",
				ReviewerName: "Asha",
			},
			setupMock: func(mReview *MockReviewRepository, mProduct *MockProductRepository) {
				mProduct.On("FindByID", mock.Anything, uint(2)).Return(&model.Product{ID: 2, IsActive: false}, nil)
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReviewRepo := new(MockReviewRepository)
			mockProductRepo := new(MockProductRepository)
			tt.setupMock(mockReviewRepo, mockProductRepo)

			service := NewReviewService(mockReviewRepo, mockProductRepo)
			review, err := service.Submit(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, review)
				// A rejected submission must leave no trace in the store.
				mockReviewRepo.AssertNotCalled(t, "CreateWithAggregate", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, review)
				assert.True(t, review.IsActive)
				assert.Equal(t, "Really good stuff", review.Comment)
				assert.Equal(t, "Asha", review.ReviewerName)
			}

			mockReviewRepo.AssertExpectations(t)
			mockProductRepo.AssertExpectations(t)
		})
	}
}

func TestReviewService_MarkHelpful(t *testing.T) {
	t.Run("existing review", func(t *testing.T) {
		mockReviewRepo := new(MockReviewRepository)
		mockReviewRepo.On("IncrementHelpful", mock.Anything, uint(5)).Return(int64(1), nil)

		service := NewReviewService(mockReviewRepo, new(MockProductRepository))
		err := service.MarkHelpful(context.Background(), 5)

		assert.NoError(t, err)
		mockReviewRepo.AssertExpectations(t)
	})

	t.Run("unknown review", func(t *testing.T) {
		mockReviewRepo := new(MockReviewRepository)
		mockReviewRepo.On("IncrementHelpful", mock.Anything, uint(99)).Return(int64(0), nil)

		service := NewReviewService(mockReviewRepo, new(MockProductRepository))
		err := service.MarkHelpful(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestReviewService_SetActive(t *testing.T) {
	t.Run("toggles through aggregate transaction", func(t *testing.T) {
		mockReviewRepo := new(MockReviewRepository)
		mockReviewRepo.On("SetActiveWithAggregate", mock.Anything, uint(3), false).Return(nil)

		service := NewReviewService(mockReviewRepo, new(MockProductRepository))
		err := service.SetActive(context.Background(), 3, false)

		assert.NoError(t, err)
		mockReviewRepo.AssertExpectations(t)
	})

	t.Run("unknown review", func(t *testing.T) {
		mockReviewRepo := new(MockReviewRepository)
		mockReviewRepo.On("SetActiveWithAggregate", mock.Anything, uint(99), true).Return(gorm.ErrRecordNotFound)

		service := NewReviewService(mockReviewRepo, new(MockProductRepository))
		err := service.SetActive(context.Background(), 99, true)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestReviewService_Delete(t *testing.T) {
	t.Run("deletes through aggregate transaction", func(t *testing.T) {
		mockReviewRepo := new(MockReviewRepository)
		mockReviewRepo.On("DeleteWithAggregate", mock.Anything, uint(3)).Return(nil)

		service := NewReviewService(mockReviewRepo, new(MockProductRepository))
		err := service.Delete(context.Background(), 3)

		assert.NoError(t, err)
		mockReviewRepo.AssertExpectations(t)
	})

	t.Run("unknown review", func(t *testing.T) {
		mockReviewRepo := new(MockReviewRepository)
		mockReviewRepo.On("DeleteWithAggregate", mock.Anything, uint(99)).Return(gorm.ErrRecordNotFound)

		service := NewReviewService(mockReviewRepo, new(MockProductRepository))
		err := service.Delete(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestReviewService_ListPublic_FiltersActiveOnly(t *testing.T) {
	mockReviewRepo := new(MockReviewRepository)
	mockReviewRepo.On("List", mock.Anything, mock.MatchedBy(func(f repository.ListFilter) bool {
		return f.ProductID == 4 && f.Active != nil && *f.Active
	})).Return([]model.Review{{ID: 1, ProductID: 4, IsActive: true}}, int64(1), nil)

	service := NewReviewService(mockReviewRepo, new(MockProductRepository))
	reviews, total, err := service.ListPublic(context.Background(), 4, 1, 20)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, reviews, 1)
	mockReviewRepo.AssertExpectations(t)
}
