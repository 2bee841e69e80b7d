package domain

import (
	"context"

	"gorm.io/gorm"
)

type ListFilter struct {
	Status     string
	CustomerID int64
}

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, quote *Quote) error
	UpdateStatus(ctx context.Context, db *gorm.DB, id int64, status string) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Quote, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Quote, error)
}
