package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	quotedomain "github.com/stitchline/vestra/internal/quote/domain"
)

type updateQuoteStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) SubmitQuote(c *gin.Context) {
	principal := principalFrom(c)

	var req quotedomain.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.quoteSvc.Submit(c.Request.Context(), principal, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListOwnQuotes(c *gin.Context) {
	principal := principalFrom(c)

	quotes, err := s.quoteSvc.ListByCustomer(c.Request.Context(), int64(principal.ID))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": quotes})
}

func (s *Server) ListQuotes(c *gin.Context) {
	quotes, err := s.quoteSvc.List(c.Request.Context(), quotedomain.ListRequest{
		Status:     c.Query("status"),
		CustomerID: c.Query("customer_id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": quotes})
}

func (s *Server) GetQuote(c *gin.Context) {
	resp, err := s.quoteSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateQuoteStatus(c *gin.Context) {
	var req updateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.quoteSvc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) RenderQuotePDF(c *gin.Context) {
	reader, err := s.quoteSvc.RenderPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="quote.pdf"`)
	c.DataFromReader(http.StatusOK, -1, "application/pdf", reader, nil)
}
