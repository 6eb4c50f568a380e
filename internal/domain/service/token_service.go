package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// A token is a self-contained, signed claim structure; nothing is stored
// server-side and expiry is the only invalidation mechanism.
type TokenService interface {
	// Issue creates a signed access token for the given user with a fixed
	// lifetime from issuance.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks a token string and returns its claims. Malformed,
	// badly signed and expired tokens all fail alike.
	Verify(tokenString string) (*Claims, error)
}
