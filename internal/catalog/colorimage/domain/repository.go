package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// ReplaceForProduct deletes the product's rows and inserts the given set
	// atomically.
	ReplaceForProduct(ctx context.Context, db *gorm.DB, productID int64, rows []ProductColorImage) error
	FindByProduct(ctx context.Context, db *gorm.DB, productID int64) ([]ProductColorImage, error)
}
