package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"chayen/internal/domain"
)

// MockShopSessionRepo is a mock implementation of port.ShopSessionRepository.
type MockShopSessionRepo struct {
	mock.Mock
}

func (m *MockShopSessionRepo) Create(ctx context.Context, session *domain.ShopSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockShopSessionRepo) GetOpen(ctx context.Context) (*domain.ShopSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopSession), args.Error(1)
}

func (m *MockShopSessionRepo) GetLastClosed(ctx context.Context) (*domain.ShopSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopSession), args.Error(1)
}

func (m *MockShopSessionRepo) Close(ctx context.Context, id, closedBy uuid.UUID, closedAt time.Time, totalSales float64) error {
	args := m.Called(ctx, id, closedBy, closedAt, totalSales)
	return args.Error(0)
}
