package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, promotion *Promotion) error
	Update(ctx context.Context, db *gorm.DB, promotion *Promotion) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Promotion, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Promotion, error)
	FindLiveAt(ctx context.Context, db *gorm.DB, now time.Time) ([]Promotion, error)
}
