// Package domain contains time-bounded percentage promotions surfaced on the
// storefront. Promotions do not stack with company tiers; the larger discount
// wins at render time.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Promotion struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Code        string       `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Name        string       `gorm:"type:text;not null" json:"name"`
	DiscountBps int64        `gorm:"column:discount_bps;not null" json:"discount_bps"`
	StartsAt    time.Time    `gorm:"column:starts_at;not null" json:"starts_at"`
	EndsAt      time.Time    `gorm:"column:ends_at;not null" json:"ends_at"`
	Active      bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Promotion) TableName() string { return "promotions" }

// Live reports whether the promotion applies at the given instant.
func (p Promotion) Live(now time.Time) bool {
	return p.Active && !now.Before(p.StartsAt) && now.Before(p.EndsAt)
}
