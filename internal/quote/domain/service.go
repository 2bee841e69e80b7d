package domain

import (
	"context"
	"errors"
	"io"
	"time"

	pricingdomain "github.com/stitchline/vestra/internal/pricing/domain"
)

type Service interface {
	// Submit snapshots the principal's cart into a new quote and clears the
	// cart. Submission is rate limited per customer.
	Submit(ctx context.Context, principal *pricingdomain.Principal, req SubmitRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Response, error)
	UpdateStatus(ctx context.Context, id, status string) (*Response, error)
	// RenderPDF produces the printable quote document.
	RenderPDF(ctx context.Context, id string) (io.Reader, error)
}

type SubmitRequest struct {
	Note string `json:"note"`
}

type ListRequest struct {
	Status     string
	CustomerID string
}

type Response struct {
	ID         string      `json:"id"`
	Reference  string      `json:"reference"`
	CustomerID string      `json:"customer_id"`
	Status     string      `json:"status"`
	Note       string      `json:"note,omitempty"`
	Items      []QuoteItem `json:"items"`
	Total      string      `json:"total"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

var (
	ErrEmptyCart          = errors.New("cart_empty")
	ErrRateLimited        = errors.New("quote_rate_limited")
	ErrNotFound           = errors.New("quote_not_found")
	ErrInvalidStatus      = errors.New("invalid_quote_status")
	ErrInvalidTransition  = errors.New("invalid_status_transition")
	ErrInvalidID          = errors.New("invalid_id")
	ErrUnavailableProduct = errors.New("cart_contains_unavailable_product")
)
