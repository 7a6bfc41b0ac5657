package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"campusmarket/internal/domain/entity"
	"campusmarket/pkg/errors"
	"campusmarket/pkg/response"
)

// TokenVerifier resolves a bearer token to the identity it was issued for.
// Satisfied by *supabase.AuthClient.
type TokenVerifier interface {
	GetUser(ctx context.Context, accessToken string) (*entity.Identity, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// Authenticate requires a valid `Bearer <token>` Authorization header and
// attaches the resolved identity and the raw token to the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.Error(c, errors.Unauthorized("Missing Bearer token", nil))
		}

		identity, err := m.verifier.GetUser(c.Request().Context(), token)
		if err != nil || identity == nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		c.Set("uid", identity.ID)
		c.Set("email", identity.Email)
		c.Set("accessToken", token)

		return next(c)
	}
}

// OptionalAuthenticate attaches the caller identity when a valid token is
// present and lets the request through anonymously otherwise. Used on the
// public listing reads, where the row-level-security scope simply widens or
// narrows with the credential.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		identity, err := m.verifier.GetUser(c.Request().Context(), token)
		if err != nil || identity == nil {
			return next(c)
		}

		c.Set("uid", identity.ID)
		c.Set("email", identity.Email)
		c.Set("accessToken", token)

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// AccessToken returns the raw bearer token the auth gate attached, or ""
// when the request went through anonymously.
func AccessToken(c echo.Context) string {
	token, _ := c.Get("accessToken").(string)
	return token
}

// CallerIdentity returns the identity the auth gate attached.
func CallerIdentity(c echo.Context) (entity.Identity, bool) {
	uid, ok := c.Get("uid").(string)
	if !ok || uid == "" {
		return entity.Identity{}, false
	}
	email, _ := c.Get("email").(string)
	return entity.Identity{ID: uid, Email: email}, true
}
