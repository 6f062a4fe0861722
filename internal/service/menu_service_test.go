package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "backoffice/internal/errors"
	"backoffice/internal/model"
)

func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestMenuService_BulkUpdateItems(t *testing.T) {
	t.Run("counts updated rows and skips misses", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		mockRepo.On("UpdateItemFields", mock.Anything, uint(1), map[string]interface{}{
			"price": decimal.NewFromInt(120),
		}).Return(int64(1), nil)
		mockRepo.On("UpdateItemFields", mock.Anything, uint(2), map[string]interface{}{
			"is_active": false,
		}).Return(int64(1), nil)
		// Patch targets an id no row has: a miss, not an error.
		mockRepo.On("UpdateItemFields", mock.Anything, uint(99), map[string]interface{}{
			"name": "Gone",
		}).Return(int64(0), nil)

		service := NewMenuService(mockRepo, nil)
		updated, err := service.BulkUpdateItems(context.Background(), []MenuItemPatch{
			{ID: uintPtr(1), Price: decPtr(120)},
			{ID: uintPtr(2), IsActive: boolPtr(false)},
			{ID: uintPtr(99), Name: strPtr("Gone")},
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, updated)
		mockRepo.AssertExpectations(t)
	})

	t.Run("skips patches without id or fields", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)

		service := NewMenuService(mockRepo, nil)
		updated, err := service.BulkUpdateItems(context.Background(), []MenuItemPatch{
			{Name: strPtr("No ID")},
			{ID: uintPtr(0), Name: strPtr("Zero ID")},
			{ID: uintPtr(5)}, // nothing to change
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, updated)
		mockRepo.AssertNotCalled(t, "UpdateItemFields", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMenuItemPatch_Fields(t *testing.T) {
	patch := MenuItemPatch{
		ID:           uintPtr(1),
		Name:         strPtr("Dosa"),
		Price:        decPtr(80),
		DisplayOrder: func() *int { v := 3; return &v }(),
	}

	fields := patch.fields()

	assert.Equal(t, "Dosa", fields["name"])
	assert.Equal(t, decimal.NewFromInt(80), fields["price"])
	assert.Equal(t, 3, fields["display_order"])
	assert.NotContains(t, fields, "description")
	assert.NotContains(t, fields, "is_active")
	assert.NotContains(t, fields, "menu_category_id")
}

func TestMenuService_UpdateItem_UnknownID(t *testing.T) {
	mockRepo := new(MockMenuRepository)
	mockRepo.On("UpdateItem", mock.Anything, mock.AnythingOfType("*model.MenuItem")).
		Return(gorm.ErrRecordNotFound)

	service := NewMenuService(mockRepo, nil)
	err := service.UpdateItem(context.Background(), &model.MenuItem{ID: 99, Name: "Ghost"})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMenuService_DeleteCategory(t *testing.T) {
	t.Run("category with items is refused", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		mockRepo.On("CountItemsByCategory", mock.Anything, uint(2)).Return(int64(4), nil)

		service := NewMenuService(mockRepo, nil)
		err := service.DeleteCategory(context.Background(), 2)

		assert.ErrorIs(t, err, apperrors.ErrMenuCategoryInUse)
		mockRepo.AssertNotCalled(t, "DeleteCategory", mock.Anything, mock.Anything)
	})

	t.Run("empty category deletes", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		mockRepo.On("CountItemsByCategory", mock.Anything, uint(1)).Return(int64(0), nil)
		mockRepo.On("DeleteCategory", mock.Anything, uint(1)).Return(nil)

		service := NewMenuService(mockRepo, nil)
		err := service.DeleteCategory(context.Background(), 1)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestMenuService_PublicMenu_FallsThroughToStore(t *testing.T) {
	menu := []model.MenuCategory{{ID: 1, Name: "Starters", IsActive: true}}

	mockRepo := new(MockMenuRepository)
	mockRepo.On("ActiveMenu", mock.Anything).Return(menu, nil)

	// Nil cache client behaves like an always-empty cache.
	service := NewMenuService(mockRepo, nil)
	got, err := service.PublicMenu(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, menu, got)
	mockRepo.AssertExpectations(t)
}
