package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"chayen/internal/domain"
	"chayen/internal/port"
)

type shopSessionRepo struct {
	db *sqlx.DB
}

// NewShopSessionRepo creates a new PostgreSQL-backed ShopSessionRepository.
func NewShopSessionRepo(db *sqlx.DB) port.ShopSessionRepository {
	return &shopSessionRepo{db: db}
}

func (r *shopSessionRepo) Create(ctx context.Context, session *domain.ShopSession) error {
	session.ID = uuid.New()
	if session.OpenedAt.IsZero() {
		session.OpenedAt = time.Now().UTC()
	}

	query := `INSERT INTO shop_sessions (id, opened_at, closed_at, opened_by, closed_by, total_sales_snapshot)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		session.ID, session.OpenedAt, session.ClosedAt, session.OpenedBy,
		session.ClosedBy, session.TotalSalesSnapshot)
	if err != nil {
		return fmt.Errorf("shopSessionRepo.Create: %w", err)
	}
	return nil
}

// GetOpen returns the current open session, or domain.ErrNotFound when the
// shop is closed. At most one session is open at a time.
func (r *shopSessionRepo) GetOpen(ctx context.Context) (*domain.ShopSession, error) {
	var session domain.ShopSession
	err := r.db.GetContext(ctx, &session,
		"SELECT * FROM shop_sessions WHERE closed_at IS NULL ORDER BY opened_at DESC LIMIT 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("shopSessionRepo.GetOpen: %w", err)
	}
	return &session, nil
}

// GetLastClosed returns the most recently closed session, or
// domain.ErrNotFound when the shop has never been closed.
func (r *shopSessionRepo) GetLastClosed(ctx context.Context) (*domain.ShopSession, error) {
	var session domain.ShopSession
	err := r.db.GetContext(ctx, &session,
		"SELECT * FROM shop_sessions WHERE closed_at IS NOT NULL ORDER BY closed_at DESC LIMIT 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("shopSessionRepo.GetLastClosed: %w", err)
	}
	return &session, nil
}

func (r *shopSessionRepo) Close(ctx context.Context, id, closedBy uuid.UUID, closedAt time.Time, totalSales float64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE shop_sessions SET closed_at = $1, closed_by = $2, total_sales_snapshot = $3
		WHERE id = $4 AND closed_at IS NULL`,
		closedAt, closedBy, totalSales, id)
	if err != nil {
		return fmt.Errorf("shopSessionRepo.Close: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
