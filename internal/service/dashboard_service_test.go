package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"backoffice/internal/model"
)

func TestDashboardService_Stats(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockUserRepo := new(MockUserRepository)
	mockReviewRepo := new(MockReviewRepository)

	mockProductRepo.On("Count", mock.Anything).Return(int64(42), nil)
	mockCategoryRepo.On("Count", mock.Anything).Return(int64(6), nil)
	mockOrderRepo.On("Count", mock.Anything).Return(int64(120), nil)
	mockOrderRepo.On("CountByStatus", mock.Anything, model.OrderStatusPending).Return(int64(9), nil)
	mockUserRepo.On("Count", mock.Anything).Return(int64(300), nil)
	mockReviewRepo.On("Count", mock.Anything).Return(int64(75), nil)
	mockProductRepo.On("TopByReviews", mock.Anything, 5).Return([]model.Product{{ID: 1}}, nil)
	mockOrderRepo.On("Recent", mock.Anything, 5).Return([]model.Order{{ID: 120}}, nil)

	service := NewDashboardService(mockProductRepo, mockCategoryRepo, mockOrderRepo, mockUserRepo, mockReviewRepo, nil)
	stats, err := service.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(42), stats.Products)
	assert.Equal(t, int64(6), stats.Categories)
	assert.Equal(t, int64(120), stats.Orders)
	assert.Equal(t, int64(9), stats.PendingOrders)
	assert.Equal(t, int64(300), stats.Customers)
	assert.Equal(t, int64(75), stats.Reviews)
	assert.Len(t, stats.TopProducts, 1)
	assert.Len(t, stats.RecentOrders, 1)
}
