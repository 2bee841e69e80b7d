package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Company groups customer accounts; an optional company type assigns the
// pricing tier applied to every member's storefront prices.
type Company struct {
	ID            snowflake.ID  `gorm:"primaryKey" json:"id"`
	Name          string        `gorm:"type:text;not null;uniqueIndex" json:"name"`
	CompanyTypeID *snowflake.ID `gorm:"column:company_type_id;index" json:"company_type_id,omitempty"`
	ContactEmail  *string       `gorm:"type:text" json:"contact_email,omitempty"`
	ContactPhone  *string       `gorm:"type:text" json:"contact_phone,omitempty"`
	CreatedAt     time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Company) TableName() string { return "companies" }
