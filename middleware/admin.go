package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/session"
	"github.com/junaidrashid-git/storefront-api/store"
)

// DenyMode selects how non-admins are turned away from admin routes.
type DenyMode string

const (
	// DenyRedirect flashes a notice and sends the user back to the catalog.
	DenyRedirect DenyMode = "redirect"
	// DenyForbidden answers with a plain 403, for API-style deployments.
	DenyForbidden DenyMode = "forbidden"
)

// AdminDenyMode reads the configured policy, defaulting to the redirect UX.
func AdminDenyMode() DenyMode {
	if os.Getenv("ADMIN_DENY_MODE") == string(DenyForbidden) {
		return DenyForbidden
	}
	return DenyRedirect
}

// RequireAdmin gates admin routes on the is_admin flag. Must run after
// RequireAuth. Either deny mode guarantees non-admins never reach a
// mutating handler.
func RequireAdmin(users store.UserStore, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := SessionFromContext(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), s.UserID)
		if err != nil || !user.IsAdmin {
			denyAdmin(c, sessions, s)
			return
		}

		c.Next()
	}
}

func denyAdmin(c *gin.Context, sessions session.Store, s *session.Session) {
	if AdminDenyMode() == DenyForbidden {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}

	_, _ = sessions.Update(c.Request.Context(), s.ID, func(s *session.Session) {
		s.Flash("Admin access required")
	})
	c.Redirect(http.StatusSeeOther, "/")
	c.Abort()
}
