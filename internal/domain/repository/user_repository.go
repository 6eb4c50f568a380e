// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"melospizza/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByLogin retrieves a single user whose username OR email equals the
	// given value. The value must already be lowercased by the caller.
	FindByLogin(ctx context.Context, usernameOrEmail string) (*entity.User, error)

	// Create persists a new user. Uniqueness of username and email is
	// enforced by the store itself; concurrent registrations racing on the
	// same value surface as a conflict error here, not as an app-level lock.
	Create(ctx context.Context, user *entity.User) error
}
