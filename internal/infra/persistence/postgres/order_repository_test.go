package postgres

import (
	"testing"

	"melospizza/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromOrderDomain_StatusNormalization(t *testing.T) {
	tests := []struct {
		name   string
		status entity.OrderStatus
		want   string
	}{
		{name: "empty status defaults to pending", status: "", want: "pending"},
		{name: "unknown status defaults to pending", status: "refunded", want: "pending"},
		{name: "known status kept", status: entity.StatusShipped, want: "shipped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderM := fromOrderDomain(&entity.Order{Status: tt.status})

			assert.Equal(t, tt.want, orderM.Status)
		})
	}
}

func TestFromOrderDomain_AssignsItemPositions(t *testing.T) {
	orderM := fromOrderDomain(&entity.Order{
		Items: []entity.OrderItem{
			{Name: "Pizza Hawaiana", Quantity: 1},
			{Name: "Gaseosa", Quantity: 2},
		},
	})

	require.Len(t, orderM.Items, 2)
	assert.Equal(t, 0, orderM.Items[0].Position)
	assert.Equal(t, 1, orderM.Items[1].Position)
}

func TestOrderMappers_Roundtrip(t *testing.T) {
	order := &entity.Order{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Items: []entity.OrderItem{
			{Name: "Pizza Hawaiana", Size: "familiar", Price: 35000, Quantity: 1},
		},
		CustomerInfo: entity.CustomerInfo{
			PaymentMethod:        "efectivo",
			ShippingAddress:      "Calle 10 #5-32",
			ShippingNeighborhood: "Centro",
			ContactPhone:         "3001234567",
		},
		TotalAmount: 35000,
		Status:      entity.StatusPending,
	}

	got := toOrderDomain(fromOrderDomain(order))

	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, order.UserID, got.UserID)
	assert.Equal(t, order.Items, got.Items)
	assert.Equal(t, order.CustomerInfo, got.CustomerInfo)
	assert.InDelta(t, order.TotalAmount, got.TotalAmount, 0.001)
	assert.Equal(t, entity.StatusPending, got.Status)
}
