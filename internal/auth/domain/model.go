// Package domain contains core types for customer accounts and sessions.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Customer is a storefront account. Admin accounts share the table and are
// distinguished by role; company membership drives pricing-tier resolution.
type Customer struct {
	ID           snowflake.ID  `gorm:"primaryKey" json:"id"`
	Email        string        `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Name         string        `gorm:"type:text;not null" json:"name"`
	Role         string        `gorm:"type:text;not null;default:'customer'" json:"role"`
	CompanyID    *snowflake.ID `gorm:"column:company_id;index" json:"company_id,omitempty"`
	PasswordHash *string       `gorm:"type:text" json:"-"`
	Active       bool          `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

// Session is a persisted login session. Only the sha256 of the raw token is
// stored.
type Session struct {
	ID               snowflake.ID `gorm:"primaryKey"`
	CustomerID       snowflake.ID `gorm:"column:customer_id;not null;index"`
	SessionTokenHash string       `gorm:"column:session_token_hash;type:text;not null;uniqueIndex"`
	UserAgent        string       `gorm:"column:user_agent;type:text"`
	IPAddress        string       `gorm:"column:ip_address;type:text"`
	ExpiresAt        time.Time    `gorm:"column:expires_at;not null;index"`
	RevokedAt        *time.Time   `gorm:"column:revoked_at"`
	CreatedAt        time.Time    `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	LastSeenAt       time.Time    `gorm:"column:last_seen_at;not null;default:CURRENT_TIMESTAMP"`
}

func (Session) TableName() string { return "sessions" }
