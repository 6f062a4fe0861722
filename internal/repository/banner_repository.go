package repository

import (
	"context"

	"gorm.io/gorm"

	"backoffice/internal/model"
)

// BannerRepository defines banner persistence operations.
type BannerRepository interface {
	List(ctx context.Context, filter ListFilter) ([]model.Banner, int64, error)
	ListActive(ctx context.Context) ([]model.Banner, error)
	FindByID(ctx context.Context, id uint) (*model.Banner, error)
	Create(ctx context.Context, banner *model.Banner) error
	Update(ctx context.Context, banner *model.Banner) error
	Delete(ctx context.Context, id uint) error
	MaxDisplayOrder(ctx context.Context) (int, error)
	SetDisplayOrder(ctx context.Context, id uint, order int) error
}

type bannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository creates a new banner repository.
func NewBannerRepository(db *gorm.DB) BannerRepository {
	return &bannerRepository{db: db}
}

func (r *bannerRepository) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Banner{})
	if filter.Search != "" {
		q = q.Where("title LIKE ?", "%"+filter.Search+"%")
	}
	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}
	return q
}

func (r *bannerRepository) List(ctx context.Context, filter ListFilter) ([]model.Banner, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var banners []model.Banner
	err := r.filtered(ctx, filter).
		Order("display_order ASC, id ASC").
		Offset(filter.offset()).
		Limit(filter.limit()).
		Find(&banners).Error
	if err != nil {
		return nil, 0, err
	}
	return banners, total, nil
}

func (r *bannerRepository) ListActive(ctx context.Context) ([]model.Banner, error) {
	var banners []model.Banner
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC, id ASC").
		Find(&banners).Error
	return banners, err
}

func (r *bannerRepository) FindByID(ctx context.Context, id uint) (*model.Banner, error) {
	var banner model.Banner
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&banner).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepository) Create(ctx context.Context, banner *model.Banner) error {
	return r.db.WithContext(ctx).Create(banner).Error
}

func (r *bannerRepository) Update(ctx context.Context, banner *model.Banner) error {
	res := r.db.WithContext(ctx).Model(&model.Banner{}).
		Where("id = ?", banner.ID).
		Select("*").Omit("id", "created_at").
		Updates(banner)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bannerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Banner{}, id).Error
}

func (r *bannerRepository) MaxDisplayOrder(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&model.Banner{}).
		Select("COALESCE(MAX(display_order), 0)").Scan(&max).Error
	return max, err
}

func (r *bannerRepository) SetDisplayOrder(ctx context.Context, id uint, order int) error {
	return r.db.WithContext(ctx).Model(&model.Banner{}).
		Where("id = ?", id).
		Update("display_order", order).Error
}
