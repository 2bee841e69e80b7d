// Package domain contains the pricing tier types.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// CompanyType is a named discount bracket assignable to companies. The
// discount is stored in basis points; zero means the tier grants nothing.
type CompanyType struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"type:text;not null;uniqueIndex" json:"name"`
	DiscountBps int64        `gorm:"column:discount_bps;not null;default:0" json:"discount_bps"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (CompanyType) TableName() string { return "company_types" }
