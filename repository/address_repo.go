package repository

import (
	"context"

	"github.com/SoloAk21/ecommerce-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AddressRepository interface {
	Create(ctx context.Context, address *models.Address) error
	List(ctx context.Context, userID *uint) ([]models.Address, error)
	Get(ctx context.Context, id uint) (*models.Address, error)
	Save(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, id uint) error
}

type addressRepo struct {
	db *gorm.DB
}

func (r *addressRepo) Create(ctx context.Context, address *models.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *addressRepo) List(ctx context.Context, userID *uint) ([]models.Address, error) {
	addresses := make([]models.Address, 0)
	query := r.db.WithContext(ctx).Preload("User")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	err := query.Find(&addresses).Error
	return addresses, err
}

func (r *addressRepo) Get(ctx context.Context, id uint) (*models.Address, error) {
	var address models.Address
	if err := r.db.WithContext(ctx).Preload("User").First(&address, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *addressRepo) Save(ctx context.Context, address *models.Address) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(address).Error
}

func (r *addressRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Address{}, "id = ?", id).Error
}
