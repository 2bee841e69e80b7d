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
	Name string  `json:"name"`
	Hex  *string `json:"hex"`
}

type UpdateRequest struct {
	ID   string  `json:"-"`
	Name *string `json:"name"`
	Hex  *string `json:"hex"`
}

type Response struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Hex       *string   `json:"hex,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	ErrInvalidName = errors.New("invalid_color_name")
	ErrInvalidHex  = errors.New("invalid_color_hex")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNameTaken   = errors.New("color_name_taken")
	ErrNotFound    = errors.New("not_found")
	ErrInUse       = errors.New("color_in_use")
)
