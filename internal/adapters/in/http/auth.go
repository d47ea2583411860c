package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// identityContextKey is where Authenticate stores the verified identity on
// the echo context.
const identityContextKey = "identity"

// ErrNoIdentity is returned when a handler runs without a verified identity,
// which means the route was registered without the Authenticate middleware.
var ErrNoIdentity = errors.New("no authenticated identity in request context")

// Claims is the JWT payload issued at login. The account ID travels in the
// registered subject claim.
type Claims struct {
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	CustomerID *string `json:"customer_id,omitempty"`
	jwt.RegisteredClaims
}

// Identity is the verified caller of a request.
type Identity struct {
	AccountID  kernel.UUID
	Email      string
	Role       account.Role
	CustomerID *kernel.UUID
}

// IsAdmin reports whether the caller holds the administrator role.
func (i Identity) IsAdmin() bool {
	return i.Role.IsAdmin()
}

// TokenIssuer mints signed bearer tokens after a successful login.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer signing with the given secret.
func NewTokenIssuer(secret string, ttl time.Duration) TokenIssuer {
	return TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token carrying the identity claims, valid for the
// configured TTL from now.
func (i TokenIssuer) Issue(identity Identity, now time.Time) (string, error) {
	claims := Claims{
		Email: identity.Email,
		Role:  identity.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.AccountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	if identity.CustomerID != nil {
		customerID := identity.CustomerID.String()
		claims.CustomerID = &customerID
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// AuthMiddleware verifies bearer tokens and gates admin-only routes.
type AuthMiddleware struct {
	secret []byte
}

// NewAuthMiddleware creates middleware verifying tokens signed with secret.
func NewAuthMiddleware(secret string) AuthMiddleware {
	return AuthMiddleware{secret: []byte(secret)}
}

// Authenticate rejects requests without a valid bearer token and stores the
// verified identity on the context for handlers to read.
func (m AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			return respondStatus(c, http.StatusUnauthorized, "missing bearer token")
		}

		identity, err := m.verify(raw)
		if err != nil {
			return respondStatus(c, http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set(identityContextKey, identity)
		return next(c)
	}
}

// RequireAdmin rejects callers without the administrator role. It must be
// registered after Authenticate.
func (m AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := identityFrom(c)
		if err != nil {
			return respondStatus(c, http.StatusUnauthorized, "missing bearer token")
		}
		if !identity.IsAdmin() {
			return respondStatus(c, http.StatusForbidden, "administrator role required")
		}
		return next(c)
	}
}

// verify parses and validates the token, rebuilding the caller identity
// from its claims.
func (m AuthMiddleware) verify(raw string) (Identity, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil {
		return Identity{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, errors.New("invalid token claims")
	}

	accountID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Identity{}, err
	}

	role, err := account.RoleFromString(claims.Role)
	if err != nil {
		return Identity{}, err
	}

	identity := Identity{
		AccountID: accountID,
		Email:     claims.Email,
		Role:      role,
	}

	if claims.CustomerID != nil {
		customerID, idErr := kernel.UUIDFromString(*claims.CustomerID)
		if idErr != nil {
			return Identity{}, idErr
		}
		identity.CustomerID = &customerID
	}

	return identity, nil
}

// identityFrom reads the identity stored by Authenticate.
func identityFrom(c echo.Context) (Identity, error) {
	identity, ok := c.Get(identityContextKey).(Identity)
	if !ok {
		return Identity{}, ErrNoIdentity
	}
	return identity, nil
}
