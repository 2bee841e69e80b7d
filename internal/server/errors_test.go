package server

import (
	"net/http"
	"testing"

	authdomain "github.com/stitchline/vestra/internal/auth/domain"
	cartdomain "github.com/stitchline/vestra/internal/cart/domain"
	productdomain "github.com/stitchline/vestra/internal/catalog/product/domain"
	companytypedomain "github.com/stitchline/vestra/internal/companytype/domain"
	orderdomain "github.com/stitchline/vestra/internal/order/domain"
	promotiondomain "github.com/stitchline/vestra/internal/promotion/domain"
	quotedomain "github.com/stitchline/vestra/internal/quote/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMapErrorStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", invalidRequestError(), http.StatusBadRequest},
		{"domain validation", cartdomain.ErrInvalidQuantity, http.StatusBadRequest},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"stale session", authdomain.ErrSessionExpired, http.StatusUnauthorized},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"conflict", companytypedomain.ErrNameTaken, http.StatusConflict},
		{"slug conflict", productdomain.ErrSlugTaken, http.StatusConflict},
		{"lifecycle conflict", orderdomain.ErrInvalidTransition, http.StatusConflict},
		{"rate limited", quotedomain.ErrRateLimited, http.StatusTooManyRequests},
		{"not found", promotiondomain.ErrNotFound, http.StatusNotFound},
		{"gorm not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"unknown", gorm.ErrInvalidTransaction, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, payload := mapError(tc.err)
			require.Equal(t, tc.status, status)
			require.NotEmpty(t, payload.Type)
		})
	}
}

func TestMapErrorValidationPayload(t *testing.T) {
	status, payload := mapError(newValidationError("quantity", "out_of_range", "quantity must be between 1 and 999"))
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "validation_error", payload.Type)
	require.Len(t, payload.Errors, 1)
	require.Equal(t, "quantity", payload.Errors[0].Field)
	require.Equal(t, "out_of_range", payload.Errors[0].Code)
}
