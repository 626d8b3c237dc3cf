package models

import "time"

// Cart is one reservation row per (user_id, product_id). Adding the same
// product again merges into the existing row instead of creating a second.
type Cart struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint        `gorm:"not null" json:"user_id"`
	ProductID uint        `gorm:"not null" json:"product_id"`
	Quantity  int         `gorm:"not null" json:"quantity"`
	Product   *ProductRef `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
