package repository

import (
	"context"

	"gorm.io/gorm"

	"backoffice/internal/model"
)

// ReviewRepository defines review persistence operations. Every write that
// changes the set of active reviews recomputes the product's aggregate
// rating and review count in the same transaction, so a reader can never
// observe an inconsistent (rating, count) pair.
type ReviewRepository interface {
	List(ctx context.Context, filter ListFilter) ([]model.Review, int64, error)
	FindByID(ctx context.Context, id uint) (*model.Review, error)
	CreateWithAggregate(ctx context.Context, review *model.Review) error
	DeleteWithAggregate(ctx context.Context, id uint) error
	SetActiveWithAggregate(ctx context.Context, id uint, active bool) error
	IncrementHelpful(ctx context.Context, id uint) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Review{})
	if filter.ProductID != 0 {
		q = q.Where("product_id = ?", filter.ProductID)
	}
	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("reviewer_name LIKE ? OR comment LIKE ?", like, like)
	}
	return q
}

func (r *reviewRepository) List(ctx context.Context, filter ListFilter) ([]model.Review, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []model.Review
	err := r.filtered(ctx, filter).
		Order("id DESC").
		Offset(filter.offset()).
		Limit(filter.limit()).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// CreateWithAggregate inserts the review and recomputes the product
// aggregates atomically. A failed recompute rolls the insert back.
func (r *reviewRepository) CreateWithAggregate(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return recomputeProductAggregate(tx, review.ProductID)
	})
}

// DeleteWithAggregate removes the review and recomputes the product
// aggregates atomically. Returns gorm.ErrRecordNotFound for unknown ids.
func (r *reviewRepository) DeleteWithAggregate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var review model.Review
		if err := tx.Where("id = ?", id).First(&review).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Review{}, id).Error; err != nil {
			return err
		}
		return recomputeProductAggregate(tx, review.ProductID)
	})
}

// SetActiveWithAggregate flips the active flag and recomputes, since
// inactive reviews are excluded from both average and count.
func (r *reviewRepository) SetActiveWithAggregate(ctx context.Context, id uint, active bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var review model.Review
		if err := tx.Where("id = ?", id).First(&review).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Review{}).Where("id = ?", id).
			Update("is_active", active).Error; err != nil {
			return err
		}
		return recomputeProductAggregate(tx, review.ProductID)
	})
}

// IncrementHelpful bumps the helpful counter; product aggregates are
// untouched by design.
func (r *reviewRepository) IncrementHelpful(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("id = ?", id).
		Update("helpful_count", gorm.Expr("helpful_count + 1"))
	return res.RowsAffected, res.Error
}

func (r *reviewRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Review{}).Count(&count).Error
	return count, err
}

// recomputeProductAggregate rewrites the product's derived rating and
// review count from its active reviews. COALESCE keeps a product with
// zero active reviews at rating 0 rather than null.
func recomputeProductAggregate(tx *gorm.DB, productID uint) error {
	var agg struct {
		Rating  float64
		Reviews int
	}
	err := tx.Model(&model.Review{}).
		Select("COALESCE(ROUND(AVG(rating), 1), 0) AS rating, COUNT(*) AS reviews").
		Where("product_id = ? AND is_active = ?", productID, true).
		Scan(&agg).Error
	if err != nil {
		return err
	}
	return tx.Model(&model.Product{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{"rating": agg.Rating, "reviews": agg.Reviews}).Error
}
