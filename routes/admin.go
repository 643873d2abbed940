package routes

import (
	"github.com/gin-gonic/gin"
	adminControllers "github.com/junaidrashid-git/storefront-api/controllers/admin"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/session"
	"github.com/junaidrashid-git/storefront-api/store"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires a session
// plus the admin flag.
func SetupAdminRoutes(r *gin.Engine, users store.UserStore, products store.ProductStore, sessions session.Store) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAuth(sessions), middleware.RequireAdmin(users, sessions))
	{
		adminGroup.GET("/products", adminControllers.ListProducts(products, sessions))
		adminGroup.GET("/products/export", adminControllers.ExportProductsToExcel(products))

		productAdmin := adminGroup.Group("/product")
		{
			productAdmin.GET("/new", adminControllers.ShowNewProduct())
			productAdmin.POST("/new", adminControllers.CreateProduct(products, sessions))
			productAdmin.GET("/:id/edit", adminControllers.ShowEditProduct(products))
			productAdmin.POST("/:id/edit", adminControllers.UpdateProduct(products, sessions))
			productAdmin.POST("/:id/delete", adminControllers.DeleteProduct(products, sessions))
		}
	}
}
