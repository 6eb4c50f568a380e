package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "gorm translated error",
			err:  gorm.ErrDuplicatedKey,
			want: true,
		},
		{
			name: "wrapped gorm error",
			err:  errors.Wrap(gorm.ErrDuplicatedKey, "create user"),
			want: true,
		},
		{
			name: "raw postgres message",
			err:  errors.New(`ERROR: duplicate key value violates unique constraint "users_username_key" (SQLSTATE 23505)`),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestUniqueConstraintName(t *testing.T) {
	err := errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`)

	name := uniqueConstraintName(err, usernameUniqueConstraint, emailUniqueConstraint)
	assert.Equal(t, emailUniqueConstraint, name)

	name = uniqueConstraintName(errors.New("duplicate key"), usernameUniqueConstraint, emailUniqueConstraint)
	assert.Empty(t, name)
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(
		errors.New(`ERROR: insert or update on table "orders" violates foreign key constraint "orders_user_id_fkey" (SQLSTATE 23503)`),
	))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("connection refused")))
}

func TestIsCheckConstraintViolation(t *testing.T) {
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.True(t, isCheckConstraintViolation(
		errors.New(`ERROR: new row for relation "orders" violates check constraint "orders_total_amount_check" (SQLSTATE 23514)`),
	))
	assert.False(t, isCheckConstraintViolation(errors.New("connection refused")))
}
