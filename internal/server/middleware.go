package server

import (
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	authdomain "github.com/stitchline/vestra/internal/auth/domain"
	pricingdomain "github.com/stitchline/vestra/internal/pricing/domain"
)

const contextPrincipalKey = "principal"

// SessionContext resolves the session cookie into a principal when present.
// Anonymous requests pass through; storefront pricing then renders base
// prices.
func (s *Server) SessionContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			c.Next()
			return
		}

		customer, err := s.authSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			// A stale cookie is not an error for public endpoints.
			if isAuthError(err) {
				c.Next()
				return
			}
			AbortWithError(c, err)
			return
		}

		c.Set(contextPrincipalKey, principalFromView(customer))
		c.Next()
	}
}

// AuthRequired rejects requests without a valid session. It reuses the
// principal resolved by SessionContext when the route group ran it already.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if principalFrom(c) != nil {
			c.Next()
			return
		}

		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		customer, err := s.authSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextPrincipalKey, principalFromView(customer))
		c.Next()
	}
}

func (s *Server) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := principalFrom(c)
		if principal == nil {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		if principal.Role != pricingdomain.RoleAdmin {
			AbortWithError(c, ErrForbidden)
			return
		}
		c.Next()
	}
}

func principalFrom(c *gin.Context) *pricingdomain.Principal {
	v, ok := c.Get(contextPrincipalKey)
	if !ok {
		return nil
	}
	principal, ok := v.(*pricingdomain.Principal)
	if !ok {
		return nil
	}
	return principal
}

func principalFromView(customer *authdomain.CustomerView) *pricingdomain.Principal {
	id, err := snowflake.ParseString(customer.ID)
	if err != nil {
		return nil
	}
	principal := &pricingdomain.Principal{
		ID:   id,
		Role: customer.Role,
	}
	if customer.CompanyID != nil {
		if companyID, err := snowflake.ParseString(*customer.CompanyID); err == nil {
			principal.CompanyID = &companyID
		}
	}
	return principal
}

func isAuthError(err error) bool {
	return errors.Is(err, authdomain.ErrInvalidSession) ||
		errors.Is(err, authdomain.ErrSessionExpired) ||
		errors.Is(err, authdomain.ErrSessionRevoked) ||
		errors.Is(err, authdomain.ErrAccountDisabled)
}
