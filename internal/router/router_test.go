package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type okHandler struct{}

func ok(c *ginext.Context) { c.Status(http.StatusOK) }

func (okHandler) ListItems(c *ginext.Context)              { ok(c) }
func (okHandler) GetItem(c *ginext.Context)                { ok(c) }
func (okHandler) GetAvailability(c *ginext.Context)        { ok(c) }
func (okHandler) CreateItem(c *ginext.Context)             { ok(c) }
func (okHandler) UpdateItem(c *ginext.Context)             { ok(c) }
func (okHandler) SeedAvailability(c *ginext.Context)       { ok(c) }
func (okHandler) RegenerateAvailability(c *ginext.Context) { ok(c) }
func (okHandler) DeleteItem(c *ginext.Context)             { ok(c) }
func (okHandler) CreateUser(c *ginext.Context)             { ok(c) }
func (okHandler) ListUsers(c *ginext.Context)              { ok(c) }
func (okHandler) UpdateUserTier(c *ginext.Context)         { ok(c) }
func (okHandler) ListCart(c *ginext.Context)               { ok(c) }
func (okHandler) AddCartItem(c *ginext.Context)            { ok(c) }
func (okHandler) RemoveCartItem(c *ginext.Context)         { ok(c) }
func (okHandler) Checkout(c *ginext.Context)               { ok(c) }
func (okHandler) ClearCart(c *ginext.Context)              { ok(c) }

func deny(status int) ginext.HandlerFunc {
	return func(c *ginext.Context) { c.AbortWithStatus(status) }
}

func TestInitRouter_Guards(t *testing.T) {
	pass := func(c *ginext.Context) { c.Next() }

	tests := []struct {
		name   string
		guards Guards
		method string
		path   string
		status int
	}{
		{"public catalog", Guards{Auth: deny(401), Admin: deny(403)}, http.MethodGet, "/api/items", http.StatusOK},
		{"public availability", Guards{Auth: deny(401), Admin: deny(403)}, http.MethodGet, "/api/items/x/availability", http.StatusOK},
		{"health", Guards{Auth: deny(401), Admin: deny(403)}, http.MethodGet, "/health", http.StatusOK},
		{"admin needs auth", Guards{Auth: deny(401), Admin: pass}, http.MethodPost, "/api/items", http.StatusUnauthorized},
		{"admin needs role", Guards{Auth: pass, Admin: deny(403)}, http.MethodDelete, "/api/items/x", http.StatusForbidden},
		{"admin allowed", Guards{Auth: pass, Admin: pass}, http.MethodPut, "/api/items/x/availability", http.StatusOK},
		{"item edit needs role", Guards{Auth: pass, Admin: deny(403)}, http.MethodPut, "/api/items/x", http.StatusForbidden},
		{"tier change needs role", Guards{Auth: pass, Admin: deny(403)}, http.MethodPut, "/api/users/x/tier", http.StatusForbidden},
		{"tier change allowed", Guards{Auth: pass, Admin: pass}, http.MethodPut, "/api/users/x/tier", http.StatusOK},
		{"cart needs auth", Guards{Auth: deny(401), Admin: pass}, http.MethodGet, "/api/cart", http.StatusUnauthorized},
		{"cart skips admin", Guards{Auth: pass, Admin: deny(403)}, http.MethodPost, "/api/cart/checkout", http.StatusOK},
		{"add is rate limited", Guards{Auth: pass, Admin: pass, RateLimit: deny(429)}, http.MethodPost, "/api/cart/items", http.StatusTooManyRequests},
		{"no limiter", Guards{Auth: pass, Admin: pass}, http.MethodPost, "/api/cart/items", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := InitRouter("test", okHandler{}, tt.guards)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
