package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"chayen/internal/domain"
)

// MockReportRepo is a mock implementation of port.ReportRepository.
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) DailySummary(ctx context.Context, from, to time.Time) (*domain.DailySummary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySummary), args.Error(1)
}
