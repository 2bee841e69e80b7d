package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidSession     = errors.New("invalid_session")
	ErrSessionExpired     = errors.New("session_expired")
	ErrSessionRevoked     = errors.New("session_revoked")
	ErrCustomerExists     = errors.New("customer_exists")
	ErrCustomerNotFound   = errors.New("customer_not_found")
	ErrInvalidEmail       = errors.New("invalid_email")
	ErrInvalidName        = errors.New("invalid_name")
	ErrInvalidRole        = errors.New("invalid_role")
	ErrInvalidCompany     = errors.New("invalid_company")
	ErrInvalidID          = errors.New("invalid_id")
	ErrWeakPassword       = errors.New("weak_password")
	ErrAccountDisabled    = errors.New("account_disabled")
)
