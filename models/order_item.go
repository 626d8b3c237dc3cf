package models

import "time"

type OrderItem struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint        `gorm:"not null" json:"order_id"`
	Order     *OrderRef   `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	ProductID uint        `gorm:"not null" json:"product_id"`
	Product   *ProductRef `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int         `gorm:"not null" json:"quantity"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
