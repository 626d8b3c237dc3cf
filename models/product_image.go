package models

import "time"

type ProductImage struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Image     string      `gorm:"not null" json:"image"`
	ProductID uint        `gorm:"not null" json:"product_id"`
	Product   *ProductRef `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
