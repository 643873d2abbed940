package authControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/session"
	"github.com/junaidrashid-git/storefront-api/store"
)

type RegisterInput struct {
	Username             string `form:"username" json:"username" binding:"required,min=4,max=64"`
	Password             string `form:"password" json:"password" binding:"required,min=6,max=128"`
	PasswordConfirmation string `form:"password_confirmation" json:"password_confirmation" binding:"required,eqfield=Password"`
}

type LoginInput struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Remember bool   `form:"remember" json:"remember"`
}

// GET /register
func ShowRegister(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middleware.CurrentSession(c, sessions); ok {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		c.JSON(http.StatusOK, gin.H{"form": gin.H{"username": "", "password": "", "password_confirmation": ""}})
	}
}

// POST /register
//
// Validates the form, stores a bcrypt hash and leaves the caller logged out;
// login stays an explicit second step.
func Register(users store.UserStore, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middleware.CurrentSession(c, sessions); ok {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}

		var input RegisterInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if _, err := users.FindByUsername(c.Request.Context(), input.Username); err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
			return
		} else if !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check username"})
			return
		}

		user := models.User{Username: input.Username}
		if err := user.SetPassword(input.Password); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		if err := users.Insert(c.Request.Context(), &user); err != nil {
			if errors.Is(err, store.ErrUsernameTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Registration successful. Please log in.",
			"user":    gin.H{"id": user.ID, "username": user.Username},
		})
	}
}

// GET /login
func ShowLogin(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middleware.CurrentSession(c, sessions); ok {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		c.JSON(http.StatusOK, gin.H{"form": gin.H{"username": "", "password": "", "remember": false}})
	}
}

// POST /login
func Login(users store.UserStore, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middleware.CurrentSession(c, sessions); ok {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}

		var input LoginInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := users.FindByUsername(c.Request.Context(), input.Username)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
			return
		}
		if !user.CheckPassword(input.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		ttl := session.DefaultTTL
		if input.Remember {
			ttl = session.RememberTTL
		}
		now := time.Now()
		s := &session.Session{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			Remember:  input.Remember,
			Cart:      models.NewCart(),
			CreatedAt: now,
			ExpiresAt: now.Add(ttl),
		}
		if err := sessions.Create(c.Request.Context(), s); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		token, err := session.SignToken(s.ID, ttl)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		middleware.SetAuthCookie(c, token, input.Remember)

		c.Redirect(http.StatusSeeOther, "/")
	}
}

// GET /logout
//
// Destroys the session unconditionally; logging out while logged out is a
// no-op rather than an error.
func Logout(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s, ok := middleware.CurrentSession(c, sessions); ok {
			_ = sessions.Delete(c.Request.Context(), s.ID)
		}
		middleware.ClearAuthCookie(c)
		c.Redirect(http.StatusSeeOther, "/")
	}
}
