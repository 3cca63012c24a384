// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hooked-store/storefront/internal/domain/cart"
	"github.com/hooked-store/storefront/internal/interfaces/http/middleware"
	"github.com/hooked-store/storefront/internal/pkg/money"
	"github.com/sirupsen/logrus"
)

// AddToCartRequest is the body of POST /cart/items. An empty or unknown
// product id leaves the cart unchanged.
type AddToCartRequest struct {
	ProductID string `json:"product_id"`
}

// ChangeQuantityRequest is the body of PATCH /cart/items/:id
type ChangeQuantityRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

// CartLineResponse is a cart line with display strings
type CartLineResponse struct {
	cart.Line
	LineTotal          int64  `json:"line_total"`
	FormattedPrice     string `json:"formatted_price"`
	FormattedLineTotal string `json:"formatted_line_total"`
}

// CartResponse is the rendered state of a cart
type CartResponse struct {
	Items     []CartLineResponse `json:"items"`
	Count     int                `json:"count"`
	Totals    cart.Totals        `json:"totals"`
	Currency  string             `json:"currency"`
	Formatted FormattedTotals    `json:"formatted"`
}

// FormattedTotals holds the totals as display strings
type FormattedTotals struct {
	Subtotal    string `json:"subtotal"`
	ShippingFee string `json:"shipping_fee"`
	GrandTotal  string `json:"grand_total"`
}

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	formatter   *money.Formatter
	logger      logrus.FieldLogger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, formatter *money.Formatter, logger logrus.FieldLogger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		formatter:   formatter,
		logger:      logger,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionCart := h.open(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.render(sessionCart),
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	sessionCart := h.open(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": sessionCart.Count(),
		},
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sessionCart := h.open(c)
	if err := sessionCart.AddItem(c.Request.Context(), req.ProductID); err != nil {
		h.persistFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    h.render(sessionCart),
	})
}

// UpdateCartItem handles PATCH /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if *req.Delta > cart.MaxQuantity || *req.Delta < -cart.MaxQuantity {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("delta must be between -%d and %d", cart.MaxQuantity, cart.MaxQuantity),
		})
		return
	}

	sessionCart := h.open(c)
	if err := sessionCart.ChangeQuantity(c.Request.Context(), c.Param("id"), *req.Delta); err != nil {
		h.persistFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    h.render(sessionCart),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	sessionCart := h.open(c)
	if err := sessionCart.RemoveItem(c.Request.Context(), c.Param("id")); err != nil {
		h.persistFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    h.render(sessionCart),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionCart := h.open(c)
	if err := sessionCart.Clear(c.Request.Context()); err != nil {
		h.persistFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    h.render(sessionCart),
	})
}

func (h *CartHandler) open(c *gin.Context) *cart.Cart {
	return h.cartService.Open(c.Request.Context(), middleware.GetSessionID(c))
}

func (h *CartHandler) persistFailed(c *gin.Context, err error) {
	middleware.RequestLogger(c, h.logger).WithError(err).Error("cart update not saved")
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Failed to save cart",
	})
}

func (h *CartHandler) render(sessionCart *cart.Cart) CartResponse {
	lines := sessionCart.Lines()
	items := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, CartLineResponse{
			Line:               line,
			LineTotal:          line.Total(),
			FormattedPrice:     h.formatter.Format(line.Price),
			FormattedLineTotal: h.formatter.Format(line.Total()),
		})
	}

	totals := sessionCart.ComputeTotals()
	return CartResponse{
		Items:    items,
		Count:    sessionCart.Count(),
		Totals:   totals,
		Currency: h.formatter.Symbol(),
		Formatted: FormattedTotals{
			Subtotal:    h.formatter.Format(totals.Subtotal),
			ShippingFee: h.formatter.Format(totals.ShippingFee),
			GrandTotal:  h.formatter.Format(totals.GrandTotal),
		},
	}
}
