package usecase

import (
	"context"

	"melospizza/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput defines the payload for creating an order. It carries no
// identity field on purpose: the owner is always the verified token's
// subject, supplied separately by the delivery layer.
type CreateOrderInput struct {
	Items        []entity.OrderItem
	CustomerInfo entity.CustomerInfo
	TotalAmount  float64
}

// CreateOrderOutput returns the key of the persisted order.
type CreateOrderOutput struct {
	OrderID uuid.UUID
}

// OrderUsecase defines the interface for authenticated order operations.
type OrderUsecase interface {
	// CreateOrder persists an order owned by authUserID.
	CreateOrder(ctx context.Context, authUserID uuid.UUID, input *CreateOrderInput) (*CreateOrderOutput, error)

	// ListOrdersByUser returns requestedUserID's order history, newest
	// first. Callers may only read their own history: authUserID must equal
	// requestedUserID or the call fails with a forbidden error.
	ListOrdersByUser(ctx context.Context, authUserID, requestedUserID uuid.UUID) ([]*entity.Order, error)
}
