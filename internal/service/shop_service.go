package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"chayen/internal/domain"
	"chayen/internal/port"
)

// ShopStatus reports whether the shop is taking orders.
type ShopStatus struct {
	IsOpen         bool                `json:"is_open"`
	CurrentSession *domain.ShopSession `json:"current_session,omitempty"`
	LastSession    *domain.ShopSession `json:"last_session,omitempty"`
}

// ShopService manages the open/close lifecycle. Orders can only be
// confirmed while a session is open; closing flips the day's open orders
// to closed and snapshots the session total.
type ShopService interface {
	Open(ctx context.Context, openedBy uuid.UUID) (*domain.ShopSession, error)
	Close(ctx context.Context, closedBy uuid.UUID) (*domain.ShopSession, error)
	Status(ctx context.Context) (*ShopStatus, error)
}

type shopService struct {
	sessionRepo port.ShopSessionRepository
	orderRepo   port.OrderRepository
}

// NewShopService creates a new ShopService implementation.
func NewShopService(sessionRepo port.ShopSessionRepository, orderRepo port.OrderRepository) ShopService {
	return &shopService{sessionRepo: sessionRepo, orderRepo: orderRepo}
}

func (s *shopService) Open(ctx context.Context, openedBy uuid.UUID) (*domain.ShopSession, error) {
	_, err := s.sessionRepo.GetOpen(ctx)
	if err == nil {
		return nil, domain.ErrShopAlreadyOpen
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("shop.Open: %w", err)
	}

	session := &domain.ShopSession{OpenedBy: openedBy}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("shop.Open: %w", err)
	}
	return session, nil
}

func (s *shopService) Close(ctx context.Context, closedBy uuid.UUID) (*domain.ShopSession, error) {
	session, err := s.sessionRepo.GetOpen(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrShopNotOpen
		}
		return nil, fmt.Errorf("shop.Close: %w", err)
	}

	totalSales, err := s.orderRepo.SumOpenSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("shop.Close: %w", err)
	}
	if _, err := s.orderRepo.CloseOpen(ctx); err != nil {
		return nil, fmt.Errorf("shop.Close: %w", err)
	}

	closedAt := time.Now().UTC()
	if err := s.sessionRepo.Close(ctx, session.ID, closedBy, closedAt, totalSales); err != nil {
		return nil, fmt.Errorf("shop.Close: %w", err)
	}

	session.ClosedAt = &closedAt
	session.ClosedBy = &closedBy
	session.TotalSalesSnapshot = &totalSales
	return session, nil
}

func (s *shopService) Status(ctx context.Context) (*ShopStatus, error) {
	status := &ShopStatus{}

	current, err := s.sessionRepo.GetOpen(ctx)
	if err == nil {
		status.IsOpen = true
		status.CurrentSession = current
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("shop.Status: %w", err)
	}

	last, err := s.sessionRepo.GetLastClosed(ctx)
	if err == nil {
		status.LastSession = last
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("shop.Status: %w", err)
	}

	return status, nil
}
