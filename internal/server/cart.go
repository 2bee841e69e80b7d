package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	cartdomain "github.com/stitchline/vestra/internal/cart/domain"
)

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Server) GetCart(c *gin.Context) {
	principal := principalFrom(c)

	view, err := s.cartSvc.Get(c.Request.Context(), principal)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}

func (s *Server) AddCartItem(c *gin.Context) {
	principal := principalFrom(c)

	var req cartdomain.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.cartSvc.AddItem(c.Request.Context(), principal.ID, req); err != nil {
		AbortWithError(c, err)
		return
	}

	view, err := s.cartSvc.Get(c.Request.Context(), principal)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": view})
}

func (s *Server) UpdateCartItem(c *gin.Context) {
	principal := principalFrom(c)

	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.cartSvc.UpdateItemQuantity(c.Request.Context(), principal.ID, c.Param("id"), req.Quantity); err != nil {
		AbortWithError(c, err)
		return
	}

	view, err := s.cartSvc.Get(c.Request.Context(), principal)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}

func (s *Server) RemoveCartItem(c *gin.Context) {
	principal := principalFrom(c)

	if err := s.cartSvc.RemoveItem(c.Request.Context(), principal.ID, c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	view, err := s.cartSvc.Get(c.Request.Context(), principal)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}

func (s *Server) ClearCart(c *gin.Context) {
	principal := principalFrom(c)

	if err := s.cartSvc.Clear(c.Request.Context(), principal.ID); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"cleared": true}})
}
