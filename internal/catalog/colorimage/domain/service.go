package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	// Assign replaces every color-image row of the product with the given
	// entries in one transaction (clear-then-recreate, not a patch).
	Assign(ctx context.Context, req AssignRequest) ([]Response, error)
	ListByProduct(ctx context.Context, productID string) ([]Response, error)
}

type AssignRequest struct {
	ProductID string        `json:"-"`
	Entries   []AssignEntry `json:"entries"`
}

type AssignEntry struct {
	ColorID   string   `json:"color_id"`
	Images    []string `json:"images"`
	IsPrimary bool     `json:"is_primary"`
	SortOrder int      `json:"sort_order"`
}

type Response struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	ColorID   string    `json:"color_id"`
	Images    []string  `json:"images"`
	IsPrimary bool      `json:"is_primary"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	ErrInvalidProduct = errors.New("invalid_product")
	ErrInvalidColor   = errors.New("invalid_color")
	ErrInvalidImages  = errors.New("invalid_images")
	ErrInvalidID      = errors.New("invalid_id")
	ErrDuplicateColor = errors.New("duplicate_color")
	ErrNotFound       = errors.New("not_found")
)
