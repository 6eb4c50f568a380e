// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"

	"melospizza/internal/domain/entity"
	"melospizza/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase mocks usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*usecase.RegisterOutput)

	return output, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*usecase.LoginOutput)

	return output, args.Error(1)
}

// MockOrderUsecase mocks usecase.OrderUsecase.
type MockOrderUsecase struct {
	mock.Mock
}

func (m *MockOrderUsecase) CreateOrder(ctx context.Context, authUserID uuid.UUID, input *usecase.CreateOrderInput) (*usecase.CreateOrderOutput, error) {
	args := m.Called(ctx, authUserID, input)
	output, _ := args.Get(0).(*usecase.CreateOrderOutput)

	return output, args.Error(1)
}

func (m *MockOrderUsecase) ListOrdersByUser(ctx context.Context, authUserID, requestedUserID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, authUserID, requestedUserID)
	orders, _ := args.Get(0).([]*entity.Order)

	return orders, args.Error(1)
}
