package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stpnv0/TourBooker/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const testSecret = "test-secret"

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func whoami(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"user_id": UserID(c), "request_id": RequestIDFrom(c)})
}

func bearer(t *testing.T, sub, role string, exp time.Time) string {
	t.Helper()
	tok, err := IssueToken(testSecret, sub, role, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})
	require.NoError(t, err)
	return "Bearer " + tok
}

func serve(r http.Handler, method, path, auth string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	r.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestAuth(t *testing.T) {
	r := ginext.New("test")
	r.GET("/me", Auth(testSecret), whoami)

	future := time.Now().Add(time.Hour)

	otherKey, err := IssueToken("other-secret", "u1", "", jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(future)})
	require.NoError(t, err)

	tests := []struct {
		name   string
		auth   string
		status int
	}{
		{"valid token", bearer(t, "u1", "", future), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"expired", bearer(t, "u1", "", time.Now().Add(-time.Hour)), http.StatusUnauthorized},
		{"wrong key", "Bearer " + otherKey, http.StatusUnauthorized},
		{"no subject", bearer(t, "", "", future), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, http.MethodGet, "/me", tt.auth)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestAuth_SetsUserID(t *testing.T) {
	r := ginext.New("test")
	r.GET("/me", Auth(testSecret), whoami)

	w := serve(r, http.MethodGet, "/me", bearer(t, "user-42", "", time.Now().Add(time.Hour)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"user-42"`)
}

func TestRequireRole(t *testing.T) {
	r := ginext.New("test")
	r.GET("/admin", Auth(testSecret), RequireRole("admin"), whoami)

	exp := time.Now().Add(time.Hour)

	w := serve(r, http.MethodGet, "/admin", bearer(t, "u1", "admin", exp))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/admin", bearer(t, "u1", "customer", exp))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestIssueToken_EmptySecret(t *testing.T) {
	_, err := IssueToken("", "u1", "", jwt.RegisteredClaims{})
	assert.Error(t, err)
}

// --- Request ID / recovery ---

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	r := ginext.New("test")
	r.GET("/x", RequestID(), whoami)

	w := serve(r, http.MethodGet, "/x", "")
	id := w.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)

	incoming := uuid.NewString()
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, incoming)
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(HeaderRequestID))
}

func TestRecovery(t *testing.T) {
	log := newTestLogger(t)

	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(log), Recovery(log))
	r.GET("/boom", func(*ginext.Context) { panic("boom") })

	w := serve(r, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

// --- Rate limit ---

type stubLimiter struct {
	decision ratelimit.Decision
	err      error
	keys     []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (ratelimit.Decision, error) {
	s.keys = append(s.keys, key)
	return s.decision, s.err
}

func TestRateLimit(t *testing.T) {
	log := newTestLogger(t)

	tests := []struct {
		name       string
		limiter    *stubLimiter
		status     int
		retryAfter string
	}{
		{"allowed", &stubLimiter{decision: ratelimit.Decision{Allowed: true, Remaining: 3}}, http.StatusOK, ""},
		{"blocked", &stubLimiter{decision: ratelimit.Decision{RetryAfter: 1500 * time.Millisecond}}, http.StatusTooManyRequests, "2"},
		{"limiter down fails open", &stubLimiter{err: errors.New("redis down")}, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ginext.New("test")
			r.POST("/cart/items", Auth(testSecret), RateLimit(tt.limiter, 5, log), whoami)

			w := serve(r, http.MethodPost, "/cart/items", bearer(t, "u1", "", time.Now().Add(time.Hour)))

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.retryAfter, w.Header().Get("Retry-After"))
			require.Len(t, tt.limiter.keys, 1)
			assert.Equal(t, "user:u1:/cart/items", tt.limiter.keys[0])
		})
	}
}

func TestRateLimit_WithLocalLimiter(t *testing.T) {
	l := ratelimit.NewLocalLimiter(ratelimit.Config{Capacity: 1, RefillTokens: 1, RefillInterval: time.Hour, TTL: time.Minute})

	r := ginext.New("test")
	r.GET("/items", RateLimit(l, 1, newTestLogger(t)), whoami)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/items", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodGet, "/items", "").Code)
}
