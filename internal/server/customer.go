package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/stitchline/vestra/internal/auth/domain"
)

type assignCustomerCompanyRequest struct {
	CompanyID string `json:"company_id"`
}

type setCustomerActiveRequest struct {
	Active *bool `json:"active"`
}

func (s *Server) ListCustomers(c *gin.Context) {
	customers, err := s.authSvc.List(c.Request.Context(), authdomain.ListRequest{
		Search:    c.Query("search"),
		CompanyID: c.Query("company_id"),
		Role:      c.Query("role"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": customers})
}

func (s *Server) GetCustomer(c *gin.Context) {
	customer, err := s.authSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": customer})
}

func (s *Server) AssignCustomerCompany(c *gin.Context) {
	var req assignCustomerCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	customer, err := s.authSvc.AssignCompany(c.Request.Context(), c.Param("id"), req.CompanyID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": customer})
}

func (s *Server) ClearCustomerCompany(c *gin.Context) {
	customer, err := s.authSvc.ClearCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": customer})
}

func (s *Server) SetCustomerActive(c *gin.Context) {
	var req setCustomerActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		AbortWithError(c, newValidationError("active", "required", "active flag is required"))
		return
	}

	customer, err := s.authSvc.SetActive(c.Request.Context(), c.Param("id"), *req.Active)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": customer})
}
