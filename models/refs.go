package models

// Restricted projections of related entities, attached to list/get responses
// instead of the full rows. Each maps onto the owning entity's table.

type UserRef struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (UserRef) TableName() string { return "users" }

type ProductRef struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

func (ProductRef) TableName() string { return "products" }

type CategoryRef struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}

func (CategoryRef) TableName() string { return "categories" }

type OrderRef struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `json:"user_id"`
}

func (OrderRef) TableName() string { return "orders" }

type ProductImageRef struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Image     string `json:"image"`
	ProductID uint   `json:"product_id"`
}

func (ProductImageRef) TableName() string { return "product_images" }
