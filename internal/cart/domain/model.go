// Package domain contains the server-side cart for authenticated customers.
// Guests keep their carts client-side; rows here always belong to an account.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type CartItem struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	CustomerID snowflake.ID `gorm:"column:customer_id;not null;index:idx_cart_item,unique,priority:1" json:"customer_id"`
	ProductID  snowflake.ID `gorm:"column:product_id;not null;index:idx_cart_item,unique,priority:2" json:"product_id"`
	SizeLabel  string       `gorm:"column:size_label;type:text;not null;index:idx_cart_item,unique,priority:3" json:"size_label"`
	ColorName  string       `gorm:"column:color_name;type:text;not null;index:idx_cart_item,unique,priority:4" json:"color_name"`
	Quantity   int          `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (CartItem) TableName() string { return "cart_items" }
