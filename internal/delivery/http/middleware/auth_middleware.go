// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	domainerrors "melospizza/internal/domain/errors"
	"melospizza/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo context key holding the authenticated user's ID.
const ContextKeyUserID = "userID"

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the verified user ID on
// the context. Errors flow to the central error handler so every rejection
// carries the standard error body.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrTokenMissing.WrapMessage("authorization header missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrTokenMissing.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
		}

		// Handlers derive ownership from this value, never from the payload.
		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}
