package model

import "time"

// Review is a customer review of a product. The product's aggregate
// rating/review count must always equal the average/count over its
// active reviews; both are recomputed in the same transaction as any
// review insert, delete, or active-flag change.
type Review struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ProductID    uint      `json:"product_id" gorm:"not null;index"`
	UserID       *uint     `json:"user_id,omitempty" gorm:"index"`
	Rating       int       `json:"rating" gorm:"not null"` // 1-5
	Comment      string    `json:"comment" gorm:"type:text"`
	ReviewerName string    `json:"reviewer_name" gorm:"size:255;not null"`
	HelpfulCount int       `json:"helpful_count" gorm:"default:0"`
	IsActive     bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Product Product `json:"-" gorm:"foreignKey:ProductID"`
}
