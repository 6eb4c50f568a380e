package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus enumerates the lifecycle states of an order. Orders are
// created as StatusPending; later transitions belong to administrative
// tooling outside this service.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known order states.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}

	return false
}

// Order is a purchase record owned by exactly one user. The owner reference
// is immutable after creation and always comes from the verified token,
// never from the request payload.
type Order struct {
	ID           uuid.UUID    // The unique identifier for the order.
	UserID       uuid.UUID    // Owning user; non-owning link into the users store.
	Items        []OrderItem  // Ordered line items; at least one.
	CustomerInfo CustomerInfo // Delivery and payment details captured at checkout.
	TotalAmount  float64      // Total in COP; never negative.
	Status       OrderStatus  // Defaults to StatusPending on creation.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderItem is a single line of an order.
type OrderItem struct {
	Name     string  // Product name, e.g. "Pizza Hawaiana".
	Size     string  // Optional size qualifier; empty for drinks and extras.
	Price    float64 // Unit price at the time of ordering.
	Quantity int     // Always >= 1.
}

// CustomerInfo carries the contact and shipping details for one order.
type CustomerInfo struct {
	PaymentMethod        string // e.g. "efectivo", "transferencia".
	ShippingAddress      string
	ShippingNeighborhood string // Optional.
	ContactPhone         string
}
