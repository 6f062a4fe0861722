package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "backoffice/internal/errors"
	"backoffice/internal/model"
)

func TestBannerService_Reorder(t *testing.T) {
	t.Run("writes list position as display order", func(t *testing.T) {
		mockRepo := new(MockBannerRepository)
		mockRepo.On("SetDisplayOrder", mock.Anything, uint(3), 0).Return(nil)
		mockRepo.On("SetDisplayOrder", mock.Anything, uint(1), 1).Return(nil)
		mockRepo.On("SetDisplayOrder", mock.Anything, uint(2), 2).Return(nil)

		service := NewBannerService(mockRepo)
		updated, err := service.Reorder(context.Background(), []uint{3, 1, 2})

		assert.NoError(t, err)
		assert.Equal(t, 3, updated)
		mockRepo.AssertExpectations(t)
	})

	t.Run("failure mid-list keeps earlier writes", func(t *testing.T) {
		storeErr := errors.New("connection lost")
		mockRepo := new(MockBannerRepository)
		mockRepo.On("SetDisplayOrder", mock.Anything, uint(3), 0).Return(nil)
		mockRepo.On("SetDisplayOrder", mock.Anything, uint(1), 1).Return(storeErr)

		service := NewBannerService(mockRepo)
		updated, err := service.Reorder(context.Background(), []uint{3, 1, 2})

		assert.Error(t, err)
		assert.ErrorIs(t, err, storeErr)
		assert.Equal(t, 1, updated)
		mockRepo.AssertNotCalled(t, "SetDisplayOrder", mock.Anything, uint(2), 2)
	})

	t.Run("empty list is a no-op", func(t *testing.T) {
		mockRepo := new(MockBannerRepository)

		service := NewBannerService(mockRepo)
		updated, err := service.Reorder(context.Background(), nil)

		assert.NoError(t, err)
		assert.Equal(t, 0, updated)
	})
}

func TestBannerService_Get_UnknownID(t *testing.T) {
	mockRepo := new(MockBannerRepository)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewBannerService(mockRepo)
	banner, err := service.Get(context.Background(), 99)

	assert.NoError(t, err)
	assert.Nil(t, banner)
}

func TestBannerService_Update_UnknownID(t *testing.T) {
	mockRepo := new(MockBannerRepository)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Banner")).
		Return(gorm.ErrRecordNotFound)

	service := NewBannerService(mockRepo)
	err := service.Update(context.Background(), &model.Banner{ID: 99, Image: "hero.png"})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
