package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, req ListRequest) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	AssignType(ctx context.Context, id, companyTypeID string) (*Response, error)
	ClearType(ctx context.Context, id string) (*Response, error)
}

type ListRequest struct {
	Search string
}

type CreateRequest struct {
	Name          string  `json:"name"`
	CompanyTypeID *string `json:"company_type_id"`
	ContactEmail  *string `json:"contact_email"`
	ContactPhone  *string `json:"contact_phone"`
}

type UpdateRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
}

type Response struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CompanyTypeID *string   `json:"company_type_id,omitempty"`
	ContactEmail  *string   `json:"contact_email,omitempty"`
	ContactPhone  *string   `json:"contact_phone,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

var (
	ErrInvalidName        = errors.New("invalid_name")
	ErrInvalidID          = errors.New("invalid_id")
	ErrInvalidCompanyType = errors.New("invalid_company_type")
	ErrNameTaken          = errors.New("company_name_taken")
	ErrNotFound           = errors.New("not_found")
	ErrHasMembers         = errors.New("company_has_members")
)
