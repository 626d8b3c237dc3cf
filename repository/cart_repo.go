package repository

import (
	"context"

	"github.com/SoloAk21/ecommerce-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository interface {
	Create(ctx context.Context, cart *models.Cart) error
	List(ctx context.Context, userID *uint) ([]models.Cart, error)
	Get(ctx context.Context, id uint) (*models.Cart, error)
	// FindByUserAndProduct returns gorm.ErrRecordNotFound when the user has
	// no row for the product yet.
	FindByUserAndProduct(ctx context.Context, userID, productID uint) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, id uint) error
}

type cartRepo struct {
	db *gorm.DB
}

func (r *cartRepo) Create(ctx context.Context, cart *models.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartRepo) List(ctx context.Context, userID *uint) ([]models.Cart, error) {
	carts := make([]models.Cart, 0)
	query := r.db.WithContext(ctx).Preload("Product")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	err := query.Find(&carts).Error
	return carts, err
}

func (r *cartRepo) Get(ctx context.Context, id uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.WithContext(ctx).Preload("Product").First(&cart, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepo) FindByUserAndProduct(ctx context.Context, userID, productID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepo) Save(ctx context.Context, cart *models.Cart) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(cart).Error
}

func (r *cartRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Cart{}, "id = ?", id).Error
}
