package repository

import (
	"context"

	"github.com/SoloAk21/ecommerce-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id uint) (*models.Product, error)
	Save(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)

	// UpdateQuantity writes an absolute stock value. Combined with a prior
	// read and compare this is the legacy non-atomic decrement path.
	UpdateQuantity(ctx context.Context, id uint, quantity int) error
	// AdjustStock adds delta to the stock unconditionally. Used to restore
	// stock when an order item's quantity is reduced.
	AdjustStock(ctx context.Context, id uint, delta int) error
	// DecrementStockIfAvailable subtracts n in a single conditional UPDATE
	// and reports false when the product is missing or the stock is short.
	DecrementStockIfAvailable(ctx context.Context, id uint, n int) (bool, error)
}

type productRepo struct {
	db *gorm.DB
}

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) List(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	err := r.db.WithContext(ctx).Preload("Images").Preload("Category").Find(&products).Error
	return products, err
}

func (r *productRepo) Get(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Preload("Images").Preload("Category").First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Save(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(product).Error
}

func (r *productRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

func (r *productRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *productRepo) UpdateQuantity(ctx context.Context, id uint, quantity int) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Update("quantity", quantity).
		Error
}

func (r *productRepo) AdjustStock(ctx context.Context, id uint, delta int) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta)).
		Error
}

func (r *productRepo) DecrementStockIfAvailable(ctx context.Context, id uint, n int) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND quantity >= ?", id, n).
		Update("quantity", gorm.Expr("quantity - ?", n))
	return result.RowsAffected > 0, result.Error
}
