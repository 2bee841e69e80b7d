// Package domain contains orders raised from reviewed quotes or directly by
// the back office. Line prices are frozen at creation.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusFulfilled = "fulfilled"
	StatusCancelled = "cancelled"
)

type Order struct {
	ID         snowflake.ID                   `gorm:"primaryKey" json:"id"`
	CustomerID snowflake.ID                   `gorm:"column:customer_id;not null;index" json:"customer_id"`
	CompanyID  *snowflake.ID                  `gorm:"column:company_id;index" json:"company_id,omitempty"`
	QuoteID    *snowflake.ID                  `gorm:"column:quote_id;index" json:"quote_id,omitempty"`
	Status     string                         `gorm:"type:text;not null;default:'pending';index" json:"status"`
	Items      datatypes.JSONSlice[OrderItem] `gorm:"not null" json:"items"`
	TotalCents int64                          `gorm:"column:total_cents;not null" json:"total_cents"`
	CreatedAt  time.Time                      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time                      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ProductID      string `json:"product_id"`
	ProductName    string `json:"product_name"`
	SizeLabel      string `json:"size_label"`
	ColorName      string `json:"color_name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	DiscountBps    int64  `json:"discount_bps"`
	LineTotalCents int64  `json:"line_total_cents"`
}

// CanTransition encodes the order lifecycle. Cancellation is allowed until
// fulfilment; fulfilled and cancelled are terminal.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusFulfilled || to == StatusCancelled
	default:
		return false
	}
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusFulfilled, StatusCancelled:
		return true
	}
	return false
}
