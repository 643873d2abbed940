package session

import (
	"context"
	"errors"
	"time"

	"github.com/junaidrashid-git/storefront-api/models"
)

const (
	// RememberTTL is the lifetime of a remember-me session.
	RememberTTL = 30 * 24 * time.Hour

	// DefaultTTL is the server-side lifetime of a plain session. The cookie
	// itself expires with the browser; this bounds abandoned sessions.
	DefaultTTL = 12 * time.Hour
)

var ErrSessionNotFound = errors.New("session not found")

// Session binds a browser to at most one authenticated user and owns that
// user's cart for the lifetime of the login. It is never written to the
// relational store; serialization happens only at the Redis boundary.
type Session struct {
	ID        string      `json:"id"`
	UserID    uint        `json:"user_id"`
	Remember  bool        `json:"remember"`
	Cart      models.Cart `json:"cart"`
	Flashes   []string    `json:"flashes,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Flash queues a one-shot notice for the next rendered page.
func (s *Session) Flash(msg string) {
	s.Flashes = append(s.Flashes, msg)
}

// Clone returns a deep copy, so a caller can read the snapshot while the
// stored record keeps changing under other requests.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Cart = models.Cart{
		Order: append([]uint(nil), s.Cart.Order...),
		Items: make(map[uint]int, len(s.Cart.Items)),
	}
	for pid, qty := range s.Cart.Items {
		cp.Cart.Items[pid] = qty
	}
	cp.Flashes = append([]string(nil), s.Flashes...)
	return &cp
}

// Store holds session records keyed by session ID.
//
// Update applies fn to the session as a single read-modify-write step:
// the memory store runs fn under its lock, the Redis store retries fn
// inside a WATCH transaction. Callers must not touch shared state in fn.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Update(ctx context.Context, id string, fn func(*Session)) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// PopFlashes atomically drains the queued flash messages.
func PopFlashes(ctx context.Context, store Store, id string) []string {
	var flashes []string
	_, err := store.Update(ctx, id, func(s *Session) {
		flashes = s.Flashes
		s.Flashes = nil
	})
	if err != nil {
		return nil
	}
	return flashes
}
