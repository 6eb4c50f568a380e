// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"melospizza/internal/domain/entity"
	"melospizza/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByLogin(ctx context.Context, usernameOrEmail string) (*entity.User, error) {
	args := m.Called(ctx, usernameOrEmail)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]*entity.Order)

	return orders, args.Error(1)
}

// StaticRepositoryFactory hands out fixed repository instances.
type StaticRepositoryFactory struct {
	Users  repository.UserRepository
	Orders repository.OrderRepository
}

func (f *StaticRepositoryFactory) UserRepo() repository.UserRepository {
	return f.Users
}

func (f *StaticRepositoryFactory) OrderRepo() repository.OrderRepository {
	return f.Orders
}

// PassthroughTxManager runs the callback against a fixed factory without a
// real transaction, so workflow tests can observe the repository calls.
type PassthroughTxManager struct {
	Factory repository.RepositoryFactory
}

func (m *PassthroughTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}
