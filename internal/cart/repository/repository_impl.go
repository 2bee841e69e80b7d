package repository

import (
	"context"
	"time"

	"github.com/stitchline/vestra/internal/cart/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, item *domain.CartItem) error {
	return db.WithContext(ctx).Create(item).Error
}

func (r *repo) UpdateQuantity(ctx context.Context, db *gorm.DB, id int64, quantity int) error {
	return db.WithContext(ctx).Exec(
		`UPDATE cart_items SET quantity = ?, updated_at = ? WHERE id = ?`,
		quantity,
		time.Now().UTC(),
		id,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM cart_items WHERE id = ?`, id).Error
}

func (r *repo) DeleteByCustomer(ctx context.Context, db *gorm.DB, customerID int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM cart_items WHERE customer_id = ?`, customerID).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.CartItem, error) {
	var item domain.CartItem
	err := db.WithContext(ctx).
		Model(&domain.CartItem{}).
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *repo) FindMatching(ctx context.Context, db *gorm.DB, customerID, productID int64, sizeLabel, colorName string) (*domain.CartItem, error) {
	var item domain.CartItem
	err := db.WithContext(ctx).
		Model(&domain.CartItem{}).
		Where("customer_id = ? AND product_id = ? AND size_label = ? AND color_name = ?",
			customerID, productID, sizeLabel, colorName).
		First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *repo) FindByCustomer(ctx context.Context, db *gorm.DB, customerID int64) ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := db.WithContext(ctx).
		Model(&domain.CartItem{}).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
