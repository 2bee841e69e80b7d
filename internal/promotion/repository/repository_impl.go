package repository

import (
	"context"
	"time"

	"github.com/stitchline/vestra/internal/promotion/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, promotion *domain.Promotion) error {
	return db.WithContext(ctx).Create(promotion).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, promotion *domain.Promotion) error {
	if promotion == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE promotions
		 SET name = ?, discount_bps = ?, starts_at = ?, ends_at = ?, active = ?, updated_at = ?
		 WHERE id = ?`,
		promotion.Name,
		promotion.DiscountBps,
		promotion.StartsAt,
		promotion.EndsAt,
		promotion.Active,
		promotion.UpdatedAt,
		promotion.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM promotions WHERE id = ?`, id).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Promotion, error) {
	var p domain.Promotion
	err := db.WithContext(ctx).
		Model(&domain.Promotion{}).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Promotion, error) {
	var promotions []domain.Promotion
	err := db.WithContext(ctx).
		Model(&domain.Promotion{}).
		Order("starts_at DESC").
		Find(&promotions).Error
	if err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *repo) FindLiveAt(ctx context.Context, db *gorm.DB, now time.Time) ([]domain.Promotion, error) {
	var promotions []domain.Promotion
	err := db.WithContext(ctx).
		Model(&domain.Promotion{}).
		Where("active = ? AND starts_at <= ? AND ends_at > ?", true, now, now).
		Order("discount_bps DESC").
		Find(&promotions).Error
	if err != nil {
		return nil, err
	}
	return promotions, nil
}
