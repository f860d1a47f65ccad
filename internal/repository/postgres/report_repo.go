package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"chayen/internal/domain"
	"chayen/internal/port"
)

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportRepository.
func NewReportRepo(db *sqlx.DB) port.ReportRepository {
	return &reportRepo{db: db}
}

// DailySummary aggregates sales for orders created in [from, to). The Date
// field is filled by the caller, which knows the shop-local day.
func (r *reportRepo) DailySummary(ctx context.Context, from, to time.Time) (*domain.DailySummary, error) {
	var totals struct {
		TotalSales  float64 `db:"total_sales"`
		TotalOrders int     `db:"total_orders"`
		TotalCups   int     `db:"total_cups"`
	}
	err := r.db.GetContext(ctx, &totals, `
		SELECT COALESCE(SUM(total_amount), 0) AS total_sales,
			COUNT(*) AS total_orders,
			COALESCE(SUM(total_qty), 0) AS total_cups
		FROM orders
		WHERE created_at >= $1 AND created_at < $2`, from, to)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.DailySummary totals: %w", err)
	}

	products := []domain.ProductSummary{}
	err = r.db.SelectContext(ctx, &products, `
		SELECT oi.product_name_snapshot AS name,
			SUM(oi.qty) AS qty,
			SUM(oi.subtotal) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.created_at >= $1 AND o.created_at < $2
		GROUP BY oi.product_name_snapshot
		ORDER BY SUM(oi.qty) DESC, oi.product_name_snapshot`, from, to)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.DailySummary products: %w", err)
	}

	return &domain.DailySummary{
		TotalSales:  totals.TotalSales,
		TotalOrders: totals.TotalOrders,
		TotalCups:   totals.TotalCups,
		TopProducts: products,
	}, nil
}
