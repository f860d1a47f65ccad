package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"chayen/internal/domain"
)

// MockToppingRepo is a mock implementation of port.ToppingRepository.
type MockToppingRepo struct {
	mock.Mock
}

func (m *MockToppingRepo) Create(ctx context.Context, topping *domain.Topping) error {
	args := m.Called(ctx, topping)
	return args.Error(0)
}

func (m *MockToppingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topping, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Topping), args.Error(1)
}

func (m *MockToppingRepo) GetByName(ctx context.Context, name string) (*domain.Topping, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Topping), args.Error(1)
}

func (m *MockToppingRepo) List(ctx context.Context, activeOnly bool) ([]domain.Topping, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Topping), args.Error(1)
}

func (m *MockToppingRepo) Update(ctx context.Context, topping *domain.Topping) error {
	args := m.Called(ctx, topping)
	return args.Error(0)
}

func (m *MockToppingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
