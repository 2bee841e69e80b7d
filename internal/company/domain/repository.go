package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, company *Company) error
	Update(ctx context.Context, db *gorm.DB, company *Company) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Company, error)
	List(ctx context.Context, db *gorm.DB, search string) ([]Company, error)
	CountMembers(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
