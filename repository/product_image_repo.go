package repository

import (
	"context"

	"github.com/SoloAk21/ecommerce-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductImageRepository interface {
	Create(ctx context.Context, image *models.ProductImage) error
	List(ctx context.Context, productID *uint) ([]models.ProductImage, error)
	Get(ctx context.Context, id uint) (*models.ProductImage, error)
	Save(ctx context.Context, image *models.ProductImage) error
	Delete(ctx context.Context, id uint) error
}

type productImageRepo struct {
	db *gorm.DB
}

func (r *productImageRepo) Create(ctx context.Context, image *models.ProductImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *productImageRepo) List(ctx context.Context, productID *uint) ([]models.ProductImage, error) {
	images := make([]models.ProductImage, 0)
	query := r.db.WithContext(ctx).Preload("Product")
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}
	err := query.Find(&images).Error
	return images, err
}

func (r *productImageRepo) Get(ctx context.Context, id uint) (*models.ProductImage, error) {
	var image models.ProductImage
	if err := r.db.WithContext(ctx).Preload("Product").First(&image, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *productImageRepo) Save(ctx context.Context, image *models.ProductImage) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(image).Error
}

func (r *productImageRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ProductImage{}, "id = ?", id).Error
}
