package domain

import (
	"context"

	"gorm.io/gorm"
)

type ListFilter struct {
	Search   string
	Category string
	Active   *bool
	SortBy   string
	OrderBy  string

	AfterID   int64
	PageSize  int
}

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, product *Product) error
	Update(ctx context.Context, db *gorm.DB, product *Product) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Product, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*Product, error)
	CountBySlugPrefix(ctx context.Context, db *gorm.DB, prefix string) (int64, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Product, error)
}
