package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type Product struct {
	ID             snowflake.ID                `gorm:"primaryKey" json:"id"`
	Slug           string                      `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	Name           string                      `gorm:"type:text;not null" json:"name"`
	Description    *string                     `gorm:"type:text" json:"description,omitempty"`
	Category       string                      `gorm:"type:text;not null;index" json:"category"`
	BasePriceCents int64                       `gorm:"column:base_price_cents;not null" json:"base_price_cents"`
	Images         datatypes.JSONSlice[string] `gorm:"not null" json:"images"`
	Sizes          datatypes.JSONSlice[string] `gorm:"not null" json:"sizes"`
	Colors         datatypes.JSONSlice[string] `gorm:"not null" json:"colors"`
	Active         bool                        `gorm:"not null;default:true" json:"active"`
	CreatedAt      time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Product) TableName() string { return "products" }
