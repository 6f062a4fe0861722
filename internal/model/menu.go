package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuCategory groups menu items for the restaurant menu page.
type MenuCategory struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	DisplayOrder int       `json:"display_order" gorm:"default:0;index"`
	IsActive     bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Items []MenuItem `json:"items,omitempty" gorm:"foreignKey:MenuCategoryID"`
}

// MenuItem is a single dish or drink on the menu.
type MenuItem struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	MenuCategoryID uint            `json:"menu_category_id" gorm:"not null;index"`
	Name           string          `json:"name" gorm:"size:255;not null"`
	Description    string          `json:"description" gorm:"type:text"`
	Price          decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Image          string          `json:"image" gorm:"size:500"`
	DisplayOrder   int             `json:"display_order" gorm:"default:0;index"`
	IsActive       bool            `json:"is_active" gorm:"default:true;index"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
