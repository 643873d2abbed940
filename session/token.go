package session

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the session ID inside the signed auth cookie. The cookie
// holds no user data; everything else lives server-side in the Store.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SignToken wraps a session ID in an HS256 JWT bounded by the session TTL.
func SignToken(sessionID string, ttl time.Duration) (string, error) {
	secret := []byte(os.Getenv("SESSION_SECRET"))
	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(secret)
}

// ParseToken verifies the cookie signature and returns the session ID.
func ParseToken(tokenStr string) (string, error) {
	secret := []byte(os.Getenv("SESSION_SECRET"))
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if c, ok := token.Claims.(*Claims); ok && token.Valid && c.SessionID != "" {
		return c.SessionID, nil
	}
	return "", errors.New("invalid token")
}
