package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, color *Color) error
	Update(ctx context.Context, db *gorm.DB, color *Color) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Color, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Color, error)
	CountReferences(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
