package model

import "time"

// Banner is a display-ordered promotional image on the storefront.
type Banner struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"size:255"`
	Image        string    `json:"image" gorm:"size:500;not null"`
	LinkURL      string    `json:"link_url" gorm:"size:500"`
	DisplayOrder int       `json:"display_order" gorm:"default:0;index"`
	IsActive     bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Popup is a promotional overlay with an optional scheduling window.
// A nil StartsAt/EndsAt leaves that side of the window open.
type Popup struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Title        string     `json:"title" gorm:"size:255"`
	Image        string     `json:"image" gorm:"size:500;not null"`
	LinkURL      string     `json:"link_url" gorm:"size:500"`
	StartsAt     *time.Time `json:"starts_at,omitempty"`
	EndsAt       *time.Time `json:"ends_at,omitempty"`
	DisplayOrder int        `json:"display_order" gorm:"default:0;index"`
	IsActive     bool       `json:"is_active" gorm:"default:true;index"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
