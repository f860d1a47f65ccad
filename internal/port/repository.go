package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"chayen/internal/domain"
)

// ProductRepository defines the contract for menu product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetByName(ctx context.Context, name string) (*domain.Product, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ToppingRepository defines the contract for topping persistence.
type ToppingRepository interface {
	Create(ctx context.Context, topping *domain.Topping) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topping, error)
	GetByName(ctx context.Context, name string) (*domain.Topping, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Topping, error)
	Update(ctx context.Context, topping *domain.Topping) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StaffRepository defines the contract for staff roster persistence.
type StaffRepository interface {
	Create(ctx context.Context, staff *domain.Staff) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Staff, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Staff, error)
	Update(ctx context.Context, staff *domain.Staff) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository defines the contract for login account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderRepository defines the contract for order persistence. Create stores
// the order and its items in one transaction.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context, filters domain.OrderFilters) ([]domain.Order, int, error)
	CloseOpen(ctx context.Context) (int64, error)
	SumOpenSales(ctx context.Context) (float64, error)
	DeleteByDateRange(ctx context.Context, from, to time.Time) (int64, error)
}

// ShopSessionRepository defines the contract for open/close session persistence.
type ShopSessionRepository interface {
	Create(ctx context.Context, session *domain.ShopSession) error
	GetOpen(ctx context.Context) (*domain.ShopSession, error)
	GetLastClosed(ctx context.Context) (*domain.ShopSession, error)
	Close(ctx context.Context, id, closedBy uuid.UUID, closedAt time.Time, totalSales float64) error
}

// ReportRepository aggregates order data for the daily report.
type ReportRepository interface {
	DailySummary(ctx context.Context, from, to time.Time) (*domain.DailySummary, error)
}
