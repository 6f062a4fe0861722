package model

import "time"

// User is a storefront customer.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Mobile    string    `json:"mobile" gorm:"size:30;index"`
	Email     string    `json:"email" gorm:"size:255;index"`
	IsActive  bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Addresses []Address `json:"addresses,omitempty" gorm:"foreignKey:UserID"`
}

// Address is a saved delivery address for a customer.
type Address struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Label     string    `json:"label" gorm:"size:50"`
	Line1     string    `json:"line1" gorm:"size:255;not null"`
	Line2     string    `json:"line2" gorm:"size:255"`
	City      string    `json:"city" gorm:"size:100"`
	Pincode   string    `json:"pincode" gorm:"size:20"`
	IsDefault bool      `json:"is_default" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
