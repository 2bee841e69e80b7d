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
	Create(ctx context.Context, db *gorm.DB, order *Order) error
	UpdateStatus(ctx context.Context, db *gorm.DB, id int64, status string) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Order, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Order, error)
}
