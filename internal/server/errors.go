package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/stitchline/vestra/internal/auth/domain"
	cartdomain "github.com/stitchline/vestra/internal/cart/domain"
	colordomain "github.com/stitchline/vestra/internal/catalog/color/domain"
	colorimagedomain "github.com/stitchline/vestra/internal/catalog/colorimage/domain"
	productdomain "github.com/stitchline/vestra/internal/catalog/product/domain"
	companydomain "github.com/stitchline/vestra/internal/company/domain"
	companytypedomain "github.com/stitchline/vestra/internal/companytype/domain"
	orderdomain "github.com/stitchline/vestra/internal/order/domain"
	promotiondomain "github.com/stitchline/vestra/internal/promotion/domain"
	quotedomain "github.com/stitchline/vestra/internal/quote/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("conflict")
	ErrInternal       = errors.New("internal_error")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   "request",
					Code:    err.Error(),
					Message: "validation error",
				},
			},
		}
	}

	switch {
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrInvalidSession),
		errors.Is(err, authdomain.ErrSessionExpired),
		errors.Is(err, authdomain.ErrSessionRevoked),
		errors.Is(err, authdomain.ErrAccountDisabled):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, errorPayload{
			Type:    "forbidden",
			Message: "forbidden",
		}
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	case errors.Is(err, quotedomain.ErrRateLimited):
		return http.StatusTooManyRequests, errorPayload{
			Type:    "rate_limited",
			Message: "too many quote submissions, retry later",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, authdomain.ErrInvalidEmail),
		errors.Is(err, authdomain.ErrInvalidName),
		errors.Is(err, authdomain.ErrInvalidRole),
		errors.Is(err, authdomain.ErrInvalidCompany),
		errors.Is(err, authdomain.ErrInvalidID),
		errors.Is(err, authdomain.ErrWeakPassword),
		errors.Is(err, productdomain.ErrInvalidName),
		errors.Is(err, productdomain.ErrInvalidCategory),
		errors.Is(err, productdomain.ErrInvalidPrice),
		errors.Is(err, productdomain.ErrInvalidID),
		errors.Is(err, colordomain.ErrInvalidName),
		errors.Is(err, colordomain.ErrInvalidHex),
		errors.Is(err, colordomain.ErrInvalidID),
		errors.Is(err, colorimagedomain.ErrInvalidProduct),
		errors.Is(err, colorimagedomain.ErrInvalidColor),
		errors.Is(err, colorimagedomain.ErrInvalidImages),
		errors.Is(err, colorimagedomain.ErrInvalidID),
		errors.Is(err, colorimagedomain.ErrDuplicateColor),
		errors.Is(err, companydomain.ErrInvalidName),
		errors.Is(err, companydomain.ErrInvalidID),
		errors.Is(err, companydomain.ErrInvalidCompanyType),
		errors.Is(err, companytypedomain.ErrInvalidName),
		errors.Is(err, companytypedomain.ErrInvalidDiscount),
		errors.Is(err, companytypedomain.ErrInvalidID),
		errors.Is(err, cartdomain.ErrInvalidQuantity),
		errors.Is(err, cartdomain.ErrInvalidSize),
		errors.Is(err, cartdomain.ErrInvalidColor),
		errors.Is(err, cartdomain.ErrInvalidID),
		errors.Is(err, quotedomain.ErrEmptyCart),
		errors.Is(err, quotedomain.ErrInvalidStatus),
		errors.Is(err, quotedomain.ErrInvalidID),
		errors.Is(err, quotedomain.ErrUnavailableProduct),
		errors.Is(err, orderdomain.ErrEmptyItems),
		errors.Is(err, orderdomain.ErrInvalidQuantity),
		errors.Is(err, orderdomain.ErrInvalidPrice),
		errors.Is(err, orderdomain.ErrInvalidStatus),
		errors.Is(err, orderdomain.ErrInvalidID),
		errors.Is(err, promotiondomain.ErrInvalidCode),
		errors.Is(err, promotiondomain.ErrInvalidName),
		errors.Is(err, promotiondomain.ErrInvalidDiscount),
		errors.Is(err, promotiondomain.ErrInvalidWindow),
		errors.Is(err, promotiondomain.ErrInvalidID):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, ErrConflict),
		errors.Is(err, authdomain.ErrCustomerExists),
		errors.Is(err, colordomain.ErrNameTaken),
		errors.Is(err, colordomain.ErrInUse),
		errors.Is(err, companydomain.ErrNameTaken),
		errors.Is(err, companydomain.ErrHasMembers),
		errors.Is(err, companytypedomain.ErrNameTaken),
		errors.Is(err, companytypedomain.ErrInUse),
		errors.Is(err, productdomain.ErrSlugTaken),
		errors.Is(err, promotiondomain.ErrCodeTaken),
		errors.Is(err, quotedomain.ErrInvalidTransition),
		errors.Is(err, orderdomain.ErrInvalidTransition):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, authdomain.ErrCustomerNotFound),
		errors.Is(err, productdomain.ErrNotFound),
		errors.Is(err, colordomain.ErrNotFound),
		errors.Is(err, colorimagedomain.ErrNotFound),
		errors.Is(err, companydomain.ErrNotFound),
		errors.Is(err, companytypedomain.ErrNotFound),
		errors.Is(err, cartdomain.ErrProductNotFound),
		errors.Is(err, cartdomain.ErrItemNotFound),
		errors.Is(err, quotedomain.ErrNotFound),
		errors.Is(err, orderdomain.ErrNotFound),
		errors.Is(err, orderdomain.ErrQuoteNotFound),
		errors.Is(err, orderdomain.ErrCustomerNotFound),
		errors.Is(err, orderdomain.ErrProductNotFound),
		errors.Is(err, promotiondomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}
