package authControllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/session"
	"github.com/junaidrashid-git/storefront-api/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockUserStore struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	nextID uint
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[uint]*models.User)}
}

func (m *mockUserStore) FindByID(_ context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) Insert(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Username == u.Username {
			return store.ErrUsernameTaken
		}
	}
	m.nextID++
	u.ID = m.nextID
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func newAuthRouter(t *testing.T, users store.UserStore) (*gin.Engine, *session.MemoryStore) {
	t.Helper()
	t.Setenv("SESSION_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	sessions := session.NewMemoryStore()
	t.Cleanup(sessions.Close)

	r := gin.New()
	r.GET("/register", ShowRegister(sessions))
	r.POST("/register", Register(users, sessions))
	r.GET("/login", ShowLogin(sessions))
	r.POST("/login", Login(users, sessions))
	r.GET("/logout", Logout(sessions))
	return r, sessions
}

func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func registerForm(username, password, confirmation string) url.Values {
	return url.Values{
		"username":              {username},
		"password":              {password},
		"password_confirmation": {confirmation},
	}
}

func TestRegister_Success(t *testing.T) {
	users := newMockUserStore()
	r, _ := newAuthRouter(t, users)

	rec := postForm(r, "/register", registerForm("alice", "secret1", "secret1"))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please log in.")

	stored, err := users.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.True(t, stored.CheckPassword("secret1"))
	assert.False(t, stored.IsAdmin)

	// registration must not log the caller in
	assert.Empty(t, rec.Result().Cookies())
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{"username too short", registerForm("abc", "secret1", "secret1")},
		{"username too long", registerForm(strings.Repeat("a", 65), "secret1", "secret1")},
		{"password too short", registerForm("alice", "12345", "12345")},
		{"password too long", registerForm("alice", strings.Repeat("p", 129), strings.Repeat("p", 129))},
		{"confirmation mismatch", registerForm("alice", "secret1", "secret2")},
		{"missing username", registerForm("", "secret1", "secret1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newMockUserStore()
			r, _ := newAuthRouter(t, users)

			rec := postForm(r, "/register", tt.form)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			_, err := users.FindByUsername(context.Background(), tt.form.Get("username"))
			assert.ErrorIs(t, err, store.ErrNotFound, "no user may be persisted")
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	users := newMockUserStore()
	r, _ := newAuthRouter(t, users)

	require.Equal(t, http.StatusCreated, postForm(r, "/register", registerForm("alice", "secret1", "secret1")).Code)

	rec := postForm(r, "/register", registerForm("alice", "hunter22", "hunter22"))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_Success_SetsSessionCookie(t *testing.T) {
	users := newMockUserStore()
	r, sessions := newAuthRouter(t, users)
	require.Equal(t, http.StatusCreated, postForm(r, "/register", registerForm("alice", "secret1", "secret1")).Code)

	rec := postForm(r, "/login", url.Values{"username": {"alice"}, "password": {"secret1"}})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	ck := cookies[0]
	assert.Equal(t, middleware.CookieName(), ck.Name)
	assert.Equal(t, 0, ck.MaxAge, "plain login expires with the browser")

	sid, err := session.ParseToken(ck.Value)
	require.NoError(t, err)
	s, err := sessions.Get(context.Background(), sid)
	require.NoError(t, err)
	assert.True(t, s.Cart.IsEmpty())
}

func TestLogin_Remember_LongLivedCookie(t *testing.T) {
	users := newMockUserStore()
	r, _ := newAuthRouter(t, users)
	require.Equal(t, http.StatusCreated, postForm(r, "/register", registerForm("alice", "secret1", "secret1")).Code)

	rec := postForm(r, "/login", url.Values{"username": {"alice"}, "password": {"secret1"}, "remember": {"true"}})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, int(session.RememberTTL.Seconds()), cookies[0].MaxAge)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	users := newMockUserStore()
	r, _ := newAuthRouter(t, users)
	require.Equal(t, http.StatusCreated, postForm(r, "/register", registerForm("alice", "secret1", "secret1")).Code)

	wrongPassword := postForm(r, "/login", url.Values{"username": {"alice"}, "password": {"wrongpw"}})
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Contains(t, wrongPassword.Body.String(), "Invalid credentials")

	unknownUser := postForm(r, "/login", url.Values{"username": {"nobody"}, "password": {"secret1"}})
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Contains(t, unknownUser.Body.String(), "Invalid credentials")
}

func TestAuthPages_RedirectWhenLoggedIn(t *testing.T) {
	users := newMockUserStore()
	r, sessions := newAuthRouter(t, users)

	now := time.Now()
	s := &session.Session{ID: uuid.NewString(), UserID: 1, Cart: models.NewCart(), CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, sessions.Create(context.Background(), s))
	token, err := session.SignToken(s.ID, time.Hour)
	require.NoError(t, err)
	ck := &http.Cookie{Name: middleware.CookieName(), Value: token}

	for _, path := range []string{"/register", "/login"} {
		rec := postForm(r, path, registerForm("bob77", "secret1", "secret1"), ck)
		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/", rec.Header().Get("Location"), path)
	}

	// the form was never processed
	_, err = users.FindByUsername(context.Background(), "bob77")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLogout_DestroysSession_Idempotent(t *testing.T) {
	users := newMockUserStore()
	r, sessions := newAuthRouter(t, users)

	now := time.Now()
	s := &session.Session{ID: uuid.NewString(), UserID: 1, Cart: models.NewCart(), CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, sessions.Create(context.Background(), s))
	token, err := session.SignToken(s.ID, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName(), Value: token})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	_, err = sessions.Get(context.Background(), s.ID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	// logging out while logged out is a no-op, not an error
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/logout", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}
