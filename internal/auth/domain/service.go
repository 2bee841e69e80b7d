package domain

import (
	"context"
	"time"
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*CustomerView, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, rawToken string) error
	// Authenticate validates a raw session token and returns the account it
	// belongs to, touching the session's last-seen timestamp.
	Authenticate(ctx context.Context, rawToken string) (*CustomerView, error)
	ChangePassword(ctx context.Context, customerID int64, current, next string) error

	// Back-office customer management.
	List(ctx context.Context, req ListRequest) ([]CustomerView, error)
	Get(ctx context.Context, id string) (*CustomerView, error)
	AssignCompany(ctx context.Context, id, companyID string) (*CustomerView, error)
	ClearCompany(ctx context.Context, id string) (*CustomerView, error)
	SetActive(ctx context.Context, id string, active bool) (*CustomerView, error)
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

type LoginResult struct {
	Customer  CustomerView
	RawToken  string
	ExpiresAt time.Time
}

type ListRequest struct {
	Search    string
	CompanyID string
	Role      string
}

// CustomerView is returned to clients without exposing credential data.
type CustomerView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CompanyID *string   `json:"company_id,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
