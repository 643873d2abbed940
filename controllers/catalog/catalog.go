package catalogControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/session"
	"github.com/junaidrashid-git/storefront-api/store"
)

// GET /
func Index(products store.ProductStore, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.FindAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		ctx := gin.H{"products": list}
		if s, ok := middleware.SessionFromContext(c); ok {
			if flashes := session.PopFlashes(c.Request.Context(), sessions, s.ID); len(flashes) > 0 {
				ctx["flashes"] = flashes
			}
		}
		c.JSON(http.StatusOK, ctx)
	}
}
