package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/session"
	"github.com/junaidrashid-git/storefront-api/store"
)

// LineItem joins one cart entry against the live product store.
type LineItem struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Subtotal float64        `json:"subtotal"`
}

// BuildView resolves cart entries in first-add order. Entries whose product
// has since been deleted are skipped and the total adjusted; the cart keeps
// only product IDs, so price changes show up immediately.
func BuildView(c *gin.Context, cart models.Cart, products store.ProductStore) ([]LineItem, float64, error) {
	items := make([]LineItem, 0, len(cart.Order))
	var total float64

	for _, pid := range cart.Order {
		qty := cart.Items[pid]
		if qty <= 0 {
			continue
		}
		product, err := products.FindByID(c.Request.Context(), pid)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, 0, err
		}
		subtotal := product.Price * float64(qty)
		items = append(items, LineItem{Product: *product, Quantity: qty, Subtotal: subtotal})
		total += subtotal
	}
	return items, total, nil
}

// GET /cart
func ViewCart(products store.ProductStore, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := middleware.SessionFromContext(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}

		items, total, err := BuildView(c, s.Cart, products)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build cart view"})
			return
		}

		ctx := gin.H{"items": items, "total": total}
		if flashes := session.PopFlashes(c.Request.Context(), sessions, s.ID); len(flashes) > 0 {
			ctx["flashes"] = flashes
		}
		c.JSON(http.StatusOK, ctx)
	}
}

// GET /add_to_cart/:id
//
// The product ID is not checked against the store here; dangling entries are
// filtered out when the cart is viewed.
func AddToCart(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		pid, ok := parseProductID(c)
		if !ok {
			return
		}
		s, ok := middleware.SessionFromContext(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}

		if _, err := sessions.Update(c.Request.Context(), s.ID, func(s *session.Session) {
			s.Cart.AddOne(pid)
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// GET /remove_one/:id
func RemoveOne(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		pid, ok := parseProductID(c)
		if !ok {
			return
		}
		s, ok := middleware.SessionFromContext(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}

		if _, err := sessions.Update(c.Request.Context(), s.ID, func(s *session.Session) {
			s.Cart.RemoveOne(pid)
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/cart")
	}
}

// GET /clear_cart
func ClearCart(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := middleware.SessionFromContext(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}

		if _, err := sessions.Update(c.Request.Context(), s.ID, func(s *session.Session) {
			s.Cart.Clear()
			s.Flash("Cart cleared.")
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/cart")
	}
}

// GET /checkout
//
// Checkout only empties the cart and confirms; no order record is written
// and no payment is captured.
func Checkout(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := middleware.SessionFromContext(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}

		if _, err := sessions.Update(c.Request.Context(), s.ID, func(s *session.Session) {
			s.Cart.Clear()
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Checkout complete. Thank you for your order."})
	}
}

func parseProductID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}
	return uint(id64), true
}
