package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Valid(t *testing.T) {
	for _, status := range []OrderStatus{StatusPending, StatusPreparing, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.True(t, status.Valid(), "status %q", status)
	}

	assert.False(t, OrderStatus("").Valid())
	assert.False(t, OrderStatus("refunded").Valid())
}
