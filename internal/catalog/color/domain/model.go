// Package domain contains core types for the color reference service.
package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Color is a reference row mapping a display label to an optional swatch hex.
type Color struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"type:text;not null;uniqueIndex" json:"name"`
	Hex       *string      `gorm:"type:text" json:"hex,omitempty"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Color) TableName() string { return "colors" }

// MatchName reports whether the color's name equals the candidate under the
// uniform matching policy: trimmed, case-insensitive.
func (c Color) MatchName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(name))
}

// HexForName returns the swatch hex for the named color, or fallback when the
// name is unknown or the color carries no hex.
func HexForName(name string, colors []Color, fallback string) string {
	for _, c := range colors {
		if c.MatchName(name) {
			if c.Hex != nil && strings.TrimSpace(*c.Hex) != "" {
				return strings.TrimSpace(*c.Hex)
			}
			return fallback
		}
	}
	return fallback
}
