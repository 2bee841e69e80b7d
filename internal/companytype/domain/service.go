package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
}

type CreateRequest struct {
	Name            string `json:"name"`
	DiscountPercent string `json:"discount_percent"`
}

type UpdateRequest struct {
	ID              string  `json:"-"`
	Name            *string `json:"name"`
	DiscountPercent *string `json:"discount_percent"`
}

type Response struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	DiscountPercent string    `json:"discount_percent"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

var (
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidDiscount = errors.New("invalid_discount")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNameTaken       = errors.New("company_type_name_taken")
	ErrNotFound        = errors.New("not_found")
	ErrInUse           = errors.New("company_type_in_use")
)
