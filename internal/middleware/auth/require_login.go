package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/closetdev/wardrobe/internal/repo"
	"github.com/closetdev/wardrobe/internal/tokens"
)

const (
	CtxUserID = "user_id"
	CtxToken  = "token"
	CtxClaims = "claims"

	bearerPrefix = "Bearer "
)

type Middleware struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

// RequireAuth resolves the caller's identity from the Authorization header.
// Signature is checked before any claim is trusted, then expiry, then the
// revocation table. A revoked token is reported as plain invalid.
func (m *Middleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return m.resolve(next, true)
}

// RequireValidToken checks signature and expiry but not revocation. Logout
// uses it so revoking an already-revoked token stays a no-op success.
func (m *Middleware) RequireValidToken(next echo.HandlerFunc) echo.HandlerFunc {
	return m.resolve(next, false)
}

func (m *Middleware) resolve(next echo.HandlerFunc, checkRevoked bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Authentication token missing"})
		}

		if !strings.HasPrefix(header, bearerPrefix) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid authorization header format"})
		}
		raw := header[len(bearerPrefix):]
		if raw == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid authorization header format"})
		}

		claims, err := tokens.Parse(raw, m.JWTSecret)
		if err != nil {
			if errors.Is(err, tokens.ErrTokenExpired) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Token expired"})
			}
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
		}

		if checkRevoked {
			revoked, err := m.Repo.TokenRevoked(c.Request().Context(), tokens.Sha256Hex(raw))
			if err != nil {
				c.Logger().Errorf("revocation lookup error: %v", err)
				return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
			}
			if revoked {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
			}
		}

		userID, err := claims.UserID()
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxToken, raw)
		c.Set(CtxClaims, claims)

		return next(c)
	}
}

// UserID returns the identity RequireAuth resolved for this request.
func UserID(c echo.Context) (uint, bool) {
	id, ok := c.Get(CtxUserID).(uint)
	return id, ok
}

// Token returns the raw bearer token and its claims for this request.
func Token(c echo.Context) (string, *tokens.Claims, bool) {
	raw, ok := c.Get(CtxToken).(string)
	if !ok {
		return "", nil, false
	}
	claims, ok := c.Get(CtxClaims).(*tokens.Claims)
	if !ok {
		return "", nil, false
	}
	return raw, claims, true
}
