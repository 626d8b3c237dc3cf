package models

import "time"

type Product struct {
	ID          uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string            `gorm:"not null" json:"name"`
	Description string            `json:"description"`
	Price       int               `gorm:"not null" json:"price"`
	Quantity    int               `gorm:"not null" json:"quantity"`
	CategoryID  uint              `gorm:"not null" json:"category_id"`
	Category    *CategoryRef      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images      []ProductImageRef `gorm:"foreignKey:ProductID" json:"images,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
