// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hooked-store/storefront/internal/domain/cart"
	"github.com/hooked-store/storefront/internal/domain/checkout"
	"github.com/hooked-store/storefront/internal/interfaces/http/middleware"
	"github.com/sirupsen/logrus"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	cartService     *cart.Service
	checkoutService *checkout.Service
	logger          logrus.FieldLogger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(cartService *cart.Service, checkoutService *checkout.Service, logger logrus.FieldLogger) *CheckoutHandler {
	return &CheckoutHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
		logger:          logger,
	}
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req checkout.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sessionCart := h.cartService.Open(c.Request.Context(), middleware.GetSessionID(c))

	handOff, err := h.checkoutService.Submit(c.Request.Context(), sessionCart, req)
	if err != nil {
		var validationErr *checkout.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   validationErr.Status(),
				"status":  validationErr.Status(),
				"details": validationErr.Fields,
			})
			return
		}

		middleware.RequestLogger(c, h.logger).WithError(err).Error("checkout failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to complete checkout",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": handOff.Status,
		"data":    handOff,
	})
}
