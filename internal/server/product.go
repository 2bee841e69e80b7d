package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	productdomain "github.com/stitchline/vestra/internal/catalog/product/domain"
)

type productListQuery struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	Active    string `form:"active"`
	SortBy    string `form:"sort_by"`
	OrderBy   string `form:"order_by"`
	PageToken string `form:"page_token"`
	PageSize  int    `form:"page_size,default=20"`
}

func (s *Server) ListProducts(c *gin.Context) {
	var q productListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	req := productdomain.ListRequest{
		Search:   q.Search,
		Category: q.Category,
		SortBy:   q.SortBy,
		OrderBy:  q.OrderBy,
	}
	if q.Active != "" {
		active, err := strconv.ParseBool(q.Active)
		if err != nil {
			AbortWithError(c, newValidationError("active", "invalid_bool", "active must be true or false"))
			return
		}
		req.Active = &active
	}
	req.Page.PageToken = q.PageToken
	req.Page.PageSize = q.PageSize

	result, err := s.productSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      result.Items,
		"page_info": result.PageInfo,
	})
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req productdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) GetProduct(c *gin.Context) {
	resp, err := s.productSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateProduct(c *gin.Context) {
	var req productdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = c.Param("id")

	resp, err := s.productSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ArchiveProduct(c *gin.Context) {
	resp, err := s.productSvc.Archive(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
