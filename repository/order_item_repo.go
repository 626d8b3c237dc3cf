package repository

import (
	"context"

	"github.com/SoloAk21/ecommerce-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderItemRepository interface {
	Create(ctx context.Context, item *models.OrderItem) error
	CreateBatch(ctx context.Context, items []models.OrderItem) error
	List(ctx context.Context, orderID *uint) ([]models.OrderItem, error)
	Get(ctx context.Context, id uint) (*models.OrderItem, error)
	Save(ctx context.Context, item *models.OrderItem) error
	Delete(ctx context.Context, id uint) error
	// DeleteByOrder removes every item of an order; order deletion cascades
	// through this explicitly, not through a database constraint.
	DeleteByOrder(ctx context.Context, orderID uint) error
}

type orderItemRepo struct {
	db *gorm.DB
}

func (r *orderItemRepo) Create(ctx context.Context, item *models.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *orderItemRepo) CreateBatch(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *orderItemRepo) List(ctx context.Context, orderID *uint) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0)
	query := r.db.WithContext(ctx).Preload("Order").Preload("Product")
	if orderID != nil {
		query = query.Where("order_id = ?", *orderID)
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *orderItemRepo) Get(ctx context.Context, id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := r.db.WithContext(ctx).Preload("Order").Preload("Product").First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderItemRepo) Save(ctx context.Context, item *models.OrderItem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error
}

func (r *orderItemRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.OrderItem{}, "id = ?", id).Error
}

func (r *orderItemRepo) DeleteByOrder(ctx context.Context, orderID uint) error {
	return r.db.WithContext(ctx).Delete(&models.OrderItem{}, "order_id = ?", orderID).Error
}
