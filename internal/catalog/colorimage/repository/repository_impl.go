package repository

import (
	"context"

	"github.com/stitchline/vestra/internal/catalog/colorimage/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) ReplaceForProduct(ctx context.Context, db *gorm.DB, productID int64, rows []domain.ProductColorImage) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			`DELETE FROM product_color_images WHERE product_id = ?`, productID,
		).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (r *repo) FindByProduct(ctx context.Context, db *gorm.DB, productID int64) ([]domain.ProductColorImage, error) {
	var items []domain.ProductColorImage
	err := db.WithContext(ctx).
		Model(&domain.ProductColorImage{}).
		Where("product_id = ?", productID).
		Order("sort_order ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
