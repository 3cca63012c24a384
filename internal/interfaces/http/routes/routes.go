// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hooked-store/storefront/internal/config"
	"github.com/hooked-store/storefront/internal/domain/cart"
	"github.com/hooked-store/storefront/internal/domain/catalog"
	"github.com/hooked-store/storefront/internal/domain/checkout"
	"github.com/hooked-store/storefront/internal/domain/contact"
	"github.com/hooked-store/storefront/internal/interfaces/http/handlers"
	"github.com/hooked-store/storefront/internal/pkg/money"
	"github.com/sirupsen/logrus"
)

// Dependencies carries the services the route handlers are built from
type Dependencies struct {
	Config   *config.Config
	Logger   logrus.FieldLogger
	Catalog  *catalog.Store
	Cart     *cart.Service
	Checkout *checkout.Service
	Contact  *contact.Service
}

// SetupCatalogRoutes sets up product related routes
func SetupCatalogRoutes(rg *gin.RouterGroup, deps Dependencies) {
	catalogHandler := handlers.NewCatalogHandler(deps.Catalog, deps.Config.Shop.BestSellers)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/best-sellers", catalogHandler.GetBestSellers)
		products.GET("/categories", catalogHandler.GetCategories)
		products.GET("/:id", catalogHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart and checkout routes
func SetupCartRoutes(rg *gin.RouterGroup, deps Dependencies) {
	cartHandler := handlers.NewCartHandler(deps.Cart, money.NewFormatter(deps.Config.Shop.CurrencySymbol), deps.Logger)
	checkoutHandler := handlers.NewCheckoutHandler(deps.Cart, deps.Checkout, deps.Logger)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PATCH("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}

	rg.POST("/checkout", checkoutHandler.Checkout)
}

// SetupContactRoutes sets up the contact form route
func SetupContactRoutes(rg *gin.RouterGroup, deps Dependencies) {
	contactHandler := handlers.NewContactHandler(deps.Contact)

	rg.POST("/contact", contactHandler.SubmitInquiry)
}

// SetupRoutes sets up all API routes
func SetupRoutes(rg *gin.RouterGroup, deps Dependencies) {
	SetupCatalogRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
	SetupContactRoutes(rg, deps)
}
