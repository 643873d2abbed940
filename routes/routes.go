package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/session"
	"github.com/junaidrashid-git/storefront-api/store"
)

// SetupRoutes is the single entry-point that wires up Auth, Shop, and Admin
// route groups.
func SetupRoutes(r *gin.Engine, users store.UserStore, products store.ProductStore, sessions session.Store) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, users, sessions)

	// Catalog and cart routes (session-protected)
	SetupShopRoutes(r, products, sessions)

	// Admin routes (session + admin-flag protected)
	SetupAdminRoutes(r, users, products, sessions)
}
