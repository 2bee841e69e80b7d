package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	// Create raises an order from explicit line items. Unit prices are taken
	// from the request as-is; the back office owns them.
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	// CreateFromQuote copies a quote's frozen lines into a new order and
	// closes the quote.
	CreateFromQuote(ctx context.Context, quoteID string) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Response, error)
	UpdateStatus(ctx context.Context, id, status string) (*Response, error)
}

type CreateRequest struct {
	CustomerID string              `json:"customer_id"`
	Items      []CreateItemRequest `json:"items"`
}

type CreateItemRequest struct {
	ProductID   string `json:"product_id"`
	SizeLabel   string `json:"size_label"`
	ColorName   string `json:"color_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	DiscountBps int64  `json:"discount_bps"`
}

type ListRequest struct {
	Status     string
	CustomerID string
}

type Response struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	CompanyID  *string     `json:"company_id,omitempty"`
	QuoteID    *string     `json:"quote_id,omitempty"`
	Status     string      `json:"status"`
	Items      []OrderItem `json:"items"`
	Total      string      `json:"total"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

var (
	ErrNotFound          = errors.New("order_not_found")
	ErrQuoteNotFound     = errors.New("quote_not_found")
	ErrCustomerNotFound  = errors.New("customer_not_found")
	ErrProductNotFound   = errors.New("product_not_found")
	ErrEmptyItems        = errors.New("order_items_empty")
	ErrInvalidQuantity   = errors.New("invalid_quantity")
	ErrInvalidPrice      = errors.New("invalid_price")
	ErrInvalidStatus     = errors.New("invalid_order_status")
	ErrInvalidTransition = errors.New("invalid_status_transition")
	ErrInvalidID         = errors.New("invalid_id")
)
