package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, item *CartItem) error
	UpdateQuantity(ctx context.Context, db *gorm.DB, id int64, quantity int) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	DeleteByCustomer(ctx context.Context, db *gorm.DB, customerID int64) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*CartItem, error)
	// FindMatching locates the row with the same product, size and color so
	// repeated adds merge into one line.
	FindMatching(ctx context.Context, db *gorm.DB, customerID, productID int64, sizeLabel, colorName string) (*CartItem, error)
	FindByCustomer(ctx context.Context, db *gorm.DB, customerID int64) ([]CartItem, error)
}
