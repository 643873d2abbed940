package routes

import (
	"github.com/gin-gonic/gin"
	authControllers "github.com/junaidrashid-git/storefront-api/controllers/auth"
	"github.com/junaidrashid-git/storefront-api/session"
	"github.com/junaidrashid-git/storefront-api/store"
)

// SetupAuthRoutes registers registration, login and logout. These stay
// outside the auth middleware; logged-in visitors are redirected by the
// handlers themselves.
func SetupAuthRoutes(r *gin.Engine, users store.UserStore, sessions session.Store) {
	r.GET("/register", authControllers.ShowRegister(sessions))
	r.POST("/register", authControllers.Register(users, sessions))
	r.GET("/login", authControllers.ShowLogin(sessions))
	r.POST("/login", authControllers.Login(users, sessions))
	r.GET("/logout", authControllers.Logout(sessions))
}
