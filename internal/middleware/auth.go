package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	userIDKey = "user_id"
	roleKey   = "role"
)

// Claims carries the caller identity issued by the identity provider.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth verifies an HS256 bearer token and stores its subject and role on the context.
func Auth(secret string) ginext.HandlerFunc {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			abortWith(c, http.StatusUnauthorized, domain.ErrUnauthorized, "missing bearer token")
			return
		}

		var claims Claims
		tok, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
			return key, nil
		})
		if err != nil || !tok.Valid {
			abortWith(c, http.StatusUnauthorized, domain.ErrUnauthorized, "invalid token")
			return
		}
		if claims.Subject == "" {
			abortWith(c, http.StatusUnauthorized, domain.ErrUnauthorized, "token has no subject")
			return
		}

		c.Set(userIDKey, claims.Subject)
		c.Set(roleKey, claims.Role)
		c.Next()
	}
}

func RequireRole(role string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if c.GetString(roleKey) != role {
			abortWith(c, http.StatusForbidden, domain.ErrForbidden, "role "+role+" required")
			return
		}
		c.Next()
	}
}

func UserID(c *ginext.Context) string {
	return c.GetString(userIDKey)
}

// IssueToken signs a token for sub with role. Used by tooling and tests.
func IssueToken(secret, sub, role string, claims jwt.RegisteredClaims) (string, error) {
	if secret == "" {
		return "", errors.New("empty signing secret")
	}
	claims.Subject = sub
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Role: role, RegisteredClaims: claims})

	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

func abortWith(c *ginext.Context, status int, err error, msg string) {
	c.Set("error", err.Error()+": "+msg)
	c.AbortWithStatusJSON(status, ginext.H{"error": msg})
}
