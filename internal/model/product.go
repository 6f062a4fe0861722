package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item in the storefront catalog.
// Rating and Reviews are derived from active reviews and written only by the
// review aggregation transaction.
type Product struct {
	ID            uint             `json:"id" gorm:"primaryKey"`
	CategoryID    uint             `json:"category_id" gorm:"not null;index"`
	Name          string           `json:"name" gorm:"size:255;not null;index"`
	Description   string           `json:"description" gorm:"type:text"`
	Price         decimal.Decimal  `json:"price" gorm:"type:decimal(10,2);not null"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty" gorm:"type:decimal(10,2)"`
	Stock         int              `json:"stock" gorm:"default:0"`
	Image         string           `json:"image" gorm:"size:500"`
	DisplayOrder  int              `json:"display_order" gorm:"default:0;index"`
	Rating        float64          `json:"rating" gorm:"type:decimal(2,1);default:0"`
	Reviews       int              `json:"reviews" gorm:"default:0"`
	IsActive      bool             `json:"is_active" gorm:"default:true;index"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`

	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// Category groups products for storefront navigation.
type Category struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Description  string    `json:"description" gorm:"type:text"`
	Image        string    `json:"image" gorm:"size:500"`
	DisplayOrder int       `json:"display_order" gorm:"default:0;index"`
	IsActive     bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
