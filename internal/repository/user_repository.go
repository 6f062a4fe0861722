package repository

import (
	"context"

	"gorm.io/gorm"

	"backoffice/internal/model"
)

// UserRepository defines customer persistence operations. The back office
// only reads customers and toggles their active flag.
type UserRepository interface {
	List(ctx context.Context, filter ListFilter) ([]model.User, int64, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	SetActive(ctx context.Context, id uint, active bool) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.User{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR mobile LIKE ? OR email LIKE ?", like, like, like)
	}
	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}
	return q
}

func (r *userRepository) List(ctx context.Context, filter ListFilter) ([]model.User, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := r.filtered(ctx, filter).
		Order("id DESC").
		Offset(filter.offset()).
		Limit(filter.limit()).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Preload("Addresses").Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) SetActive(ctx context.Context, id uint, active bool) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("is_active", active)
	return res.RowsAffected, res.Error
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}
