package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"chayen/internal/service"
)

// MockParseService is a mock implementation of service.ParseService.
type MockParseService struct {
	mock.Mock
}

func (m *MockParseService) Preview(ctx context.Context, input service.ParseInput) (*service.ParsePreview, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ParsePreview), args.Error(1)
}
