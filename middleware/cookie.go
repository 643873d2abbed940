package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/session"
)

// CookieName returns the auth cookie name, overridable for multi-app hosts.
func CookieName() string {
	if v := os.Getenv("COOKIE_NAME"); v != "" {
		return v
	}
	return "storefront_auth"
}

func cookieSecure() bool {
	return os.Getenv("COOKIE_SECURE") == "true"
}

// SetAuthCookie installs the signed session token. With remember set the
// cookie outlives browser restarts; otherwise it expires with the browser
// while the server-side session keeps its own shorter TTL.
func SetAuthCookie(c *gin.Context, token string, remember bool) {
	maxAge := 0
	if remember {
		maxAge = int(session.RememberTTL.Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName(), token, maxAge, "/", "", cookieSecure(), true)
}

func ClearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName(), "", -1, "/", "", cookieSecure(), true)
}
