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
	Get(ctx context.Context, id string) (*Response, error)
	List(ctx context.Context) ([]Response, error)
	// ActiveAt returns the promotions live at the given instant, best
	// discount first.
	ActiveAt(ctx context.Context, now time.Time) ([]Response, error)
}

type CreateRequest struct {
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	DiscountPercent string    `json:"discount_percent"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
}

type UpdateRequest struct {
	ID              string     `json:"-"`
	Name            *string    `json:"name"`
	DiscountPercent *string    `json:"discount_percent"`
	StartsAt        *time.Time `json:"starts_at"`
	EndsAt          *time.Time `json:"ends_at"`
	Active          *bool      `json:"active"`
}

type Response struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	DiscountPercent string    `json:"discount_percent"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

var (
	ErrInvalidCode     = errors.New("invalid_promotion_code")
	ErrInvalidName     = errors.New("invalid_promotion_name")
	ErrInvalidDiscount = errors.New("invalid_promotion_discount")
	ErrInvalidWindow   = errors.New("invalid_promotion_window")
	ErrInvalidID       = errors.New("invalid_id")
	ErrCodeTaken       = errors.New("promotion_code_taken")
	ErrNotFound        = errors.New("promotion_not_found")
)
