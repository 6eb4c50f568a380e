// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Username and Email are both
// login identifiers and are stored lowercase; each is globally unique.
// PasswordHash holds the bcrypt hash of the secret. The raw secret is never
// persisted and must never reach a log line.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // Login handle, lowercase, at least 3 characters.
	Email        string    // Contact address, lowercase, format-validated.
	PasswordHash string    // bcrypt hash; recomputed whenever the secret changes.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
