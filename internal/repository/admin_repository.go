package repository

import (
	"context"

	"gorm.io/gorm"

	"backoffice/internal/model"
)

// AdminRepository defines admin and session persistence operations.
type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	FindByID(ctx context.Context, id uint) (*model.Admin, error)
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
	CreateSession(ctx context.Context, session *model.AdminSession) error
	FindSessionByTokenHash(ctx context.Context, hash string) (*model.AdminSession, error)
	DeleteSession(ctx context.Context, id uint) error
	DeleteSessionsForAdmin(ctx context.Context, adminID uint) error
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *adminRepository) FindByID(ctx context.Context, id uint) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) CreateSession(ctx context.Context, session *model.AdminSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *adminRepository) FindSessionByTokenHash(ctx context.Context, hash string) (*model.AdminSession, error) {
	var session model.AdminSession
	if err := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *adminRepository) DeleteSession(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.AdminSession{}, id).Error
}

func (r *adminRepository) DeleteSessionsForAdmin(ctx context.Context, adminID uint) error {
	return r.db.WithContext(ctx).Where("admin_id = ?", adminID).Delete(&model.AdminSession{}).Error
}
