package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles the per-entity repositories over one database handle. It is
// opened at startup and injected into the handlers; no package-level state.
type Store struct {
	db *gorm.DB

	Users         UserRepository
	Addresses     AddressRepository
	Categories    CategoryRepository
	Products      ProductRepository
	ProductImages ProductImageRepository
	Orders        OrderRepository
	OrderItems    OrderItemRepository
	Carts         CartRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Users:         &userRepo{db: db},
		Addresses:     &addressRepo{db: db},
		Categories:    &categoryRepo{db: db},
		Products:      &productRepo{db: db},
		ProductImages: &productImageRepo{db: db},
		Orders:        &orderRepo{db: db},
		OrderItems:    &orderItemRepo{db: db},
		Carts:         &cartRepo{db: db},
	}
}

// Transaction runs fn with a Store bound to a single database transaction.
// Returning an error rolls everything back.
func (s *Store) Transaction(ctx context.Context, fn func(*Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
