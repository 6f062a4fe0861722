package repository

import (
	"context"

	"gorm.io/gorm"

	"backoffice/internal/model"
)

// OrderRepository defines order persistence operations. Orders are created
// by the storefront, never by the back office; admin access is read and
// status update only.
type OrderRepository interface {
	List(ctx context.Context, filter ListFilter) ([]model.Order, int64, error)
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) (int64, error)
	Recent(ctx context.Context, n int) ([]model.Order, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Order{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("customer_name LIKE ? OR customer_mobile LIKE ?", like, like)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	return q
}

func (r *orderRepository) List(ctx context.Context, filter ListFilter) ([]model.Order, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.Order
	err := r.filtered(ctx, filter).
		Preload("User").
		Preload("User.Addresses").
		Order("id DESC").
		Offset(filter.offset()).
		Limit(filter.limit()).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("User.Addresses").
		Preload("Items").
		Preload("Items.Product").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus writes the new status and reports affected rows so the
// caller can distinguish an unknown id from a no-op.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *orderRepository) Recent(ctx context.Context, n int) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("id DESC").
		Limit(n).
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&count).Error
	return count, err
}

func (r *orderRepository) CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}
