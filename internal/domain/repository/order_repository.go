package repository

import (
	"context"

	"melospizza/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order together with its line items. The order's
	// owner must reference an existing user; the store's foreign key rejects
	// anything else.
	Create(ctx context.Context, order *entity.Order) error

	// ListByUser returns all orders owned by the given user, newest first.
	// A user with no orders yields an empty slice, not an error.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
