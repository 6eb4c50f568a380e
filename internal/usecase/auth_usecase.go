// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
// Login accepts either the username or the email in the same field.
type LoginInput struct {
	UsernameOrEmail string
	Password        string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's identity key.
type RegisterOutput struct {
	UserID uuid.UUID
}

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	Token    string
	UserID   uuid.UUID
	Username string
}

// AuthUsecase defines the interface for registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
