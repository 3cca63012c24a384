// internal/interfaces/http/handlers/contact.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hooked-store/storefront/internal/domain/contact"
)

// ContactHandler handles contact form submissions
type ContactHandler struct {
	contactService *contact.Service
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *contact.Service) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// SubmitInquiry handles POST /contact
func (h *ContactHandler) SubmitInquiry(c *gin.Context) {
	var inq contact.Inquiry
	if err := c.ShouldBindJSON(&inq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result := <-h.contactService.SubmitAsync(c.Request.Context(), inq)

	switch {
	case errors.Is(result.Err, contact.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  result.Status,
			"status": result.Status,
		})
	case result.Err != nil:
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  result.Status,
			"status": result.Status,
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message": result.Status,
			"data":    result,
		})
	}
}
