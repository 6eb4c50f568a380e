package validator

import (
	"testing"

	domainerrors "melospizza/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name     string  `validate:"required"`
	Quantity int     `validate:"required,min=1"`
	Total    float64 `validate:"gte=0"`
}

func TestEchoValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Name: "Pizza", Quantity: 2, Total: 100})

	require.NoError(t, err)
}

func TestEchoValidator_TagFailuresBecomeValidationError(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Name: "", Quantity: 0, Total: -5})

	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Fields(), 3)
	assert.Contains(t, validationErr.Fields(), "El campo 'name' es obligatorio")
	assert.Contains(t, validationErr.Fields(), "El campo 'total' está por debajo del mínimo permitido")
}
