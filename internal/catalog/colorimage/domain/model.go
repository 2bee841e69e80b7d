// Package domain contains the per-color image override types and the
// display-image resolution rules used by the storefront.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// ProductColorImage overrides which images a product shows when one of its
// colors is selected. A product with no rows for a color falls back to its
// own image list.
type ProductColorImage struct {
	ID        snowflake.ID               `gorm:"primaryKey" json:"id"`
	ProductID snowflake.ID               `gorm:"column:product_id;not null;index:ux_product_color,priority:1" json:"product_id"`
	ColorID   snowflake.ID               `gorm:"column:color_id;not null;index:ux_product_color,priority:2" json:"color_id"`
	Images    datatypes.JSONSlice[string] `gorm:"not null" json:"images"`
	IsPrimary bool                       `gorm:"column:is_primary;not null;default:false" json:"is_primary"`
	SortOrder int                        `gorm:"column:sort_order;not null;default:0" json:"sort_order"`
	CreatedAt time.Time                  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time                  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (ProductColorImage) TableName() string { return "product_color_images" }
