package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/junaidrashid-git/storefront-api/controllers/cart"
	catalogControllers "github.com/junaidrashid-git/storefront-api/controllers/catalog"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/session"
	"github.com/junaidrashid-git/storefront-api/store"
)

// SetupShopRoutes registers the catalog and cart endpoints. All of them
// require a live session.
func SetupShopRoutes(r *gin.Engine, products store.ProductStore, sessions session.Store) {
	shop := r.Group("/")
	shop.Use(middleware.RequireAuth(sessions))
	{
		shop.GET("", catalogControllers.Index(products, sessions)) // GET /

		shop.GET("/cart", cartControllers.ViewCart(products, sessions))
		shop.GET("/add_to_cart/:id", cartControllers.AddToCart(sessions))
		shop.GET("/remove_one/:id", cartControllers.RemoveOne(sessions))
		shop.GET("/clear_cart", cartControllers.ClearCart(sessions))
		shop.GET("/checkout", cartControllers.Checkout(sessions))
	}
}
