package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/session"
)

// CtxSession is the context key RequireAuth stores the session under.
const CtxSession = "session"

// RequireAuth resolves the signed cookie into a live session and bounces
// anonymous requests to the login page.
func RequireAuth(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := CurrentSession(c, sessions)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(CtxSession, s)
		c.Next()
	}
}

// CurrentSession walks cookie → token → store without aborting the request,
// so login/register handlers can redirect already-authenticated visitors.
func CurrentSession(c *gin.Context, sessions session.Store) (*session.Session, bool) {
	cookie, err := c.Cookie(CookieName())
	if err != nil || cookie == "" {
		return nil, false
	}

	sid, err := session.ParseToken(cookie)
	if err != nil {
		return nil, false
	}

	s, err := sessions.Get(c.Request.Context(), sid)
	if err != nil {
		return nil, false
	}
	return s, true
}

// SessionFromContext returns the session installed by RequireAuth.
func SessionFromContext(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(CtxSession)
	if !exists {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}
