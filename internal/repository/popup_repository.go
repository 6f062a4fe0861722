package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"backoffice/internal/model"
)

// PopupRepository defines popup persistence operations.
type PopupRepository interface {
	List(ctx context.Context, filter ListFilter) ([]model.Popup, int64, error)
	ListLive(ctx context.Context, now time.Time) ([]model.Popup, error)
	FindByID(ctx context.Context, id uint) (*model.Popup, error)
	Create(ctx context.Context, popup *model.Popup) error
	Update(ctx context.Context, popup *model.Popup) error
	Delete(ctx context.Context, id uint) error
	MaxDisplayOrder(ctx context.Context) (int, error)
}

type popupRepository struct {
	db *gorm.DB
}

// NewPopupRepository creates a new popup repository.
func NewPopupRepository(db *gorm.DB) PopupRepository {
	return &popupRepository{db: db}
}

func (r *popupRepository) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Popup{})
	if filter.Search != "" {
		q = q.Where("title LIKE ?", "%"+filter.Search+"%")
	}
	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}
	return q
}

func (r *popupRepository) List(ctx context.Context, filter ListFilter) ([]model.Popup, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var popups []model.Popup
	err := r.filtered(ctx, filter).
		Order("display_order ASC, id ASC").
		Offset(filter.offset()).
		Limit(filter.limit()).
		Find(&popups).Error
	if err != nil {
		return nil, 0, err
	}
	return popups, total, nil
}

// ListLive returns active popups whose scheduling window contains now.
// A null boundary leaves that side of the window open.
func (r *popupRepository) ListLive(ctx context.Context, now time.Time) ([]model.Popup, error) {
	var popups []model.Popup
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at >= ?", now).
		Order("display_order ASC, id ASC").
		Find(&popups).Error
	return popups, err
}

func (r *popupRepository) FindByID(ctx context.Context, id uint) (*model.Popup, error) {
	var popup model.Popup
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&popup).Error; err != nil {
		return nil, err
	}
	return &popup, nil
}

func (r *popupRepository) Create(ctx context.Context, popup *model.Popup) error {
	return r.db.WithContext(ctx).Create(popup).Error
}

func (r *popupRepository) Update(ctx context.Context, popup *model.Popup) error {
	res := r.db.WithContext(ctx).Model(&model.Popup{}).
		Where("id = ?", popup.ID).
		Select("*").Omit("id", "created_at").
		Updates(popup)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *popupRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Popup{}, id).Error
}

func (r *popupRepository) MaxDisplayOrder(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&model.Popup{}).
		Select("COALESCE(MAX(display_order), 0)").Scan(&max).Error
	return max, err
}
