package repository

import (
	"context"
	"time"

	"github.com/stitchline/vestra/internal/quote/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, quote *domain.Quote) error {
	return db.WithContext(ctx).Create(quote).Error
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id int64, status string) error {
	return db.WithContext(ctx).Exec(
		`UPDATE quotes SET status = ?, updated_at = ? WHERE id = ?`,
		status,
		time.Now().UTC(),
		id,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Quote, error) {
	var q domain.Quote
	err := db.WithContext(ctx).
		Model(&domain.Quote{}).
		Where("id = ?", id).
		First(&q).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.Quote, error) {
	stmt := db.WithContext(ctx).Model(&domain.Quote{})

	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if filter.CustomerID != 0 {
		stmt = stmt.Where("customer_id = ?", filter.CustomerID)
	}

	var quotes []domain.Quote
	if err := stmt.Order("created_at DESC").Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}
