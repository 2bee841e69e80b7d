package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	pricingdomain "github.com/stitchline/vestra/internal/pricing/domain"
)

const MaxQuantity = 999

type Service interface {
	// Get returns the customer's cart enriched with display images and
	// tier-resolved prices. Enrichment is best-effort; a failed lookup never
	// fails the cart itself.
	Get(ctx context.Context, principal *pricingdomain.Principal) (*CartView, error)
	AddItem(ctx context.Context, customerID snowflake.ID, req AddItemRequest) error
	UpdateItemQuantity(ctx context.Context, customerID snowflake.ID, itemID string, quantity int) error
	RemoveItem(ctx context.Context, customerID snowflake.ID, itemID string) error
	Clear(ctx context.Context, customerID snowflake.ID) error
}

type AddItemRequest struct {
	ProductID string `json:"product_id"`
	SizeLabel string `json:"size_label"`
	ColorName string `json:"color_name"`
	Quantity  int    `json:"quantity"`
}

type ItemView struct {
	ID              string   `json:"id"`
	ProductID       string   `json:"product_id"`
	ProductName     string   `json:"product_name"`
	ProductSlug     string   `json:"product_slug"`
	SizeLabel       string   `json:"size_label"`
	ColorName       string   `json:"color_name"`
	Quantity        int      `json:"quantity"`
	DisplayImages   []string `json:"display_images"`
	Thumbnail       string   `json:"thumbnail"`
	OriginalPrice   string   `json:"original_price"`
	DiscountedPrice string   `json:"discounted_price"`
	LineTotal       string   `json:"line_total"`
	Unavailable     bool     `json:"unavailable,omitempty"`
}

type CartView struct {
	Items              []ItemView `json:"items"`
	SubtotalOriginal   string     `json:"subtotal_original"`
	SubtotalDiscounted string     `json:"subtotal_discounted"`
	DiscountPercent    string     `json:"discount_percent,omitempty"`
	TierName           string     `json:"company_type_name,omitempty"`
}

var (
	ErrProductNotFound = errors.New("product_not_found")
	ErrInvalidQuantity = errors.New("invalid_quantity")
	ErrInvalidSize     = errors.New("invalid_size")
	ErrInvalidColor    = errors.New("invalid_color")
	ErrItemNotFound    = errors.New("cart_item_not_found")
	ErrInvalidID       = errors.New("invalid_id")
)
