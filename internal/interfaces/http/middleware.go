package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/opinio-app/survey_backend/internal/domain"
)

const claimsLocal = "authClaims"

// Claims is the identity carried by a bearer token.
type Claims struct {
	UserID int         `json:"uid"`
	Role   domain.Role `json:"role"`
	Email  string      `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies bearer tokens with an HS256 secret.
type TokenManager struct {
	secret []byte
}

// NewTokenManager creates a new token manager instance.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Sign produces a token for the identity, valid for ttl.
func (m *TokenManager) Sign(userID int, role domain.Role, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) parse(tok string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tok, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

// WithAuth attaches claims to the request when a valid bearer token is
// present. Invalid or absent tokens leave the request anonymous.
func (m *TokenManager) WithAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		h := c.Get("Authorization")
		if strings.HasPrefix(h, "Bearer ") {
			tok := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
			if claims, err := m.parse(tok); err == nil {
				c.Locals(claimsLocal, claims)
			}
		}
		return c.Next()
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := claimsFrom(c); !ok {
			return handleError(c, domain.Unauthorized("authentication required"))
		}
		return c.Next()
	}
}

// RequireAdmin rejects requests without the admin role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := claimsFrom(c)
		if !ok {
			return handleError(c, domain.Unauthorized("authentication required"))
		}
		if claims.Role != domain.RoleAdmin {
			return handleError(c, domain.Forbidden("admin role required"))
		}
		return c.Next()
	}
}

// claimsFrom returns the request identity, when any.
func claimsFrom(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(claimsLocal).(*Claims)
	return claims, ok
}

// identityFrom returns (userID, role) or (0, "") for anonymous requests.
func identityFrom(c *fiber.Ctx) (int, domain.Role) {
	if claims, ok := claimsFrom(c); ok {
		return claims.UserID, claims.Role
	}
	return 0, ""
}
