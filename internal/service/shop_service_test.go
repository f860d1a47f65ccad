package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chayen/internal/domain"
	"chayen/internal/service"
	"chayen/mocks"
)

func TestShopService_Open_Success(t *testing.T) {
	sessionRepo := new(mocks.MockShopSessionRepo)
	orderRepo := new(mocks.MockOrderRepo)
	svc := service.NewShopService(sessionRepo, orderRepo)

	userID := uuid.New()
	sessionRepo.On("GetOpen", mock.Anything).Return(nil, domain.ErrNotFound)
	sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ShopSession")).Return(nil)

	session, err := svc.Open(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, userID, session.OpenedBy)
	sessionRepo.AssertExpectations(t)
}

func TestShopService_Open_AlreadyOpen(t *testing.T) {
	sessionRepo := new(mocks.MockShopSessionRepo)
	svc := service.NewShopService(sessionRepo, new(mocks.MockOrderRepo))

	sessionRepo.On("GetOpen", mock.Anything).Return(&domain.ShopSession{ID: uuid.New()}, nil)

	session, err := svc.Open(context.Background(), uuid.New())

	assert.Nil(t, session)
	assert.ErrorIs(t, err, domain.ErrShopAlreadyOpen)
}

func TestShopService_Close_SnapshotsSalesAndClosesOrders(t *testing.T) {
	sessionRepo := new(mocks.MockShopSessionRepo)
	orderRepo := new(mocks.MockOrderRepo)
	svc := service.NewShopService(sessionRepo, orderRepo)

	sessionID := uuid.New()
	closedBy := uuid.New()
	sessionRepo.On("GetOpen", mock.Anything).Return(&domain.ShopSession{ID: sessionID}, nil)
	orderRepo.On("SumOpenSales", mock.Anything).Return(450.0, nil)
	orderRepo.On("CloseOpen", mock.Anything).Return(int64(12), nil)
	sessionRepo.On("Close", mock.Anything, sessionID, closedBy, mock.AnythingOfType("time.Time"), 450.0).
		Return(nil)

	session, err := svc.Close(context.Background(), closedBy)

	require.NoError(t, err)
	require.NotNil(t, session.ClosedAt)
	require.NotNil(t, session.TotalSalesSnapshot)
	assert.Equal(t, 450.0, *session.TotalSalesSnapshot)
	assert.Equal(t, closedBy, *session.ClosedBy)
	sessionRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestShopService_Close_NotOpen(t *testing.T) {
	sessionRepo := new(mocks.MockShopSessionRepo)
	svc := service.NewShopService(sessionRepo, new(mocks.MockOrderRepo))

	sessionRepo.On("GetOpen", mock.Anything).Return(nil, domain.ErrNotFound)

	session, err := svc.Close(context.Background(), uuid.New())

	assert.Nil(t, session)
	assert.ErrorIs(t, err, domain.ErrShopNotOpen)
}

func TestShopService_Status_Closed(t *testing.T) {
	sessionRepo := new(mocks.MockShopSessionRepo)
	svc := service.NewShopService(sessionRepo, new(mocks.MockOrderRepo))

	last := &domain.ShopSession{ID: uuid.New()}
	sessionRepo.On("GetOpen", mock.Anything).Return(nil, domain.ErrNotFound)
	sessionRepo.On("GetLastClosed", mock.Anything).Return(last, nil)

	status, err := svc.Status(context.Background())

	require.NoError(t, err)
	assert.False(t, status.IsOpen)
	assert.Nil(t, status.CurrentSession)
	assert.Equal(t, last, status.LastSession)
}

func TestShopService_Status_Open(t *testing.T) {
	sessionRepo := new(mocks.MockShopSessionRepo)
	svc := service.NewShopService(sessionRepo, new(mocks.MockOrderRepo))

	open := &domain.ShopSession{ID: uuid.New()}
	sessionRepo.On("GetOpen", mock.Anything).Return(open, nil)
	sessionRepo.On("GetLastClosed", mock.Anything).Return(nil, domain.ErrNotFound)

	status, err := svc.Status(context.Background())

	require.NoError(t, err)
	assert.True(t, status.IsOpen)
	assert.Equal(t, open, status.CurrentSession)
	assert.Nil(t, status.LastSession)
}
