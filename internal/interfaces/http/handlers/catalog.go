// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hooked-store/storefront/internal/domain/catalog"
)

// CatalogHandler handles product endpoints
type CatalogHandler struct {
	store       *catalog.Store
	bestSellers int
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(store *catalog.Store, bestSellers int) *CatalogHandler {
	return &CatalogHandler{
		store:       store,
		bestSellers: bestSellers,
	}
}

// GetProducts handles GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	var view catalog.View

	// Bind query parameters
	if err := c.ShouldBindQuery(&view); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	products := h.store.Filter(view)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": products,
			"total":    len(products),
		},
	})
}

// GetBestSellers handles GET /products/best-sellers
func (h *CatalogHandler) GetBestSellers(c *gin.Context) {
	limit := h.bestSellers
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
			})
			return
		}
		limit = parsed
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Best sellers retrieved successfully",
		"data":    h.store.BestSellers(limit),
	})
}

// GetCategories handles GET /products/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    catalog.Categories(),
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, ok := h.store.Find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}
