// Package domain contains quote requests: a customer's cart snapshot
// submitted for back-office review, with prices frozen at submission time.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

const (
	StatusNew      = "new"
	StatusReviewed = "reviewed"
	StatusClosed   = "closed"
)

type Quote struct {
	ID         snowflake.ID                   `gorm:"primaryKey" json:"id"`
	Reference  string                         `gorm:"type:text;not null;uniqueIndex" json:"reference"`
	CustomerID snowflake.ID                   `gorm:"column:customer_id;not null;index" json:"customer_id"`
	Status     string                         `gorm:"type:text;not null;default:'new';index" json:"status"`
	Note       string                         `gorm:"type:text" json:"note"`
	Items      datatypes.JSONSlice[QuoteItem] `gorm:"not null" json:"items"`
	TotalCents int64                          `gorm:"column:total_cents;not null" json:"total_cents"`
	CreatedAt  time.Time                      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time                      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Quote) TableName() string { return "quotes" }

// QuoteItem is an immutable snapshot of one cart line. Prices and discount
// are frozen here; later catalog or tier changes do not touch it.
type QuoteItem struct {
	ProductID      string `json:"product_id"`
	ProductName    string `json:"product_name"`
	SizeLabel      string `json:"size_label"`
	ColorName      string `json:"color_name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	DiscountBps    int64  `json:"discount_bps"`
	LineTotalCents int64  `json:"line_total_cents"`
}

// CanTransition reports whether a quote may move between the two statuses.
// The lifecycle only moves forward.
func CanTransition(from, to string) bool {
	switch from {
	case StatusNew:
		return to == StatusReviewed || to == StatusClosed
	case StatusReviewed:
		return to == StatusClosed
	default:
		return false
	}
}

func ValidStatus(s string) bool {
	return s == StatusNew || s == StatusReviewed || s == StatusClosed
}
