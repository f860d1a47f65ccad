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

type orderRepo struct {
	db *sqlx.DB
}

// NewOrderRepo creates a new PostgreSQL-backed OrderRepository.
func NewOrderRepo(db *sqlx.DB) port.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *domain.Order) error {
	order.ID = uuid.New()
	order.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("orderRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO orders (id, raw_text, created_by, staff_id, total_amount, total_qty, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(ctx, query,
		order.ID, order.RawText, order.CreatedBy, order.StaffID,
		order.TotalAmount, order.TotalQty, order.Status, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("orderRepo.Create order: %w", err)
	}

	itemQuery := `INSERT INTO order_items (id, order_id, product_id, product_name_snapshot,
		price_snapshot, qty, toppings_snapshot, topping_total, sweetness, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for i := range order.Items {
		item := &order.Items[i]
		item.ID = uuid.New()
		item.OrderID = order.ID
		_, err = tx.ExecContext(ctx, itemQuery,
			item.ID, item.OrderID, item.ProductID, item.ProductNameSnapshot,
			item.PriceSnapshot, item.Qty, item.ToppingsSnapshot, item.ToppingTotal,
			item.Sweetness, item.Subtotal)
		if err != nil {
			return fmt.Errorf("orderRepo.Create item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("orderRepo.Create commit: %w", err)
	}
	return nil
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var order domain.Order
	err := r.db.GetContext(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("orderRepo.GetByID: %w", err)
	}
	if err := r.loadItems(ctx, []*domain.Order{&order}); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) List(ctx context.Context, filters domain.OrderFilters) ([]domain.Order, int, error) {
	args := []interface{}{}
	where := []string{}

	if filters.From != nil && filters.To != nil {
		args = append(args, *filters.From)
		where = append(where, fmt.Sprintf("created_at >= $%d", len(args)))
		args = append(args, *filters.To)
		where = append(where, fmt.Sprintf("created_at < $%d", len(args)))
	}
	if filters.StaffID != nil {
		args = append(args, *filters.StaffID)
		where = append(where, fmt.Sprintf("staff_id = $%d", len(args)))
	}
	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + where[0]
		for _, w := range where[1:] {
			clause += " AND " + w
		}
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM orders"+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("orderRepo.List count: %w", err)
	}

	query := "SELECT * FROM orders" + clause + " ORDER BY created_at DESC"
	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filters.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	orders := []domain.Order{}
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, 0, fmt.Errorf("orderRepo.List: %w", err)
	}

	refs := make([]*domain.Order, len(orders))
	for i := range orders {
		refs[i] = &orders[i]
	}
	if err := r.loadItems(ctx, refs); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// loadItems fills Items for each order in one query.
func (r *orderRepo) loadItems(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(orders))
	byID := make(map[uuid.UUID]*domain.Order, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		byID[o.ID] = o
		o.Items = []domain.OrderItem{}
	}

	query, args, err := sqlx.In(
		"SELECT * FROM order_items WHERE order_id IN (?) ORDER BY order_id, id", ids)
	if err != nil {
		return fmt.Errorf("orderRepo.loadItems: %w", err)
	}
	query = r.db.Rebind(query)

	items := []domain.OrderItem{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return fmt.Errorf("orderRepo.loadItems: %w", err)
	}
	for _, item := range items {
		if o, ok := byID[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	return nil
}

func (r *orderRepo) CloseOpen(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = $1 WHERE status = $2",
		domain.OrderStatusClosed, domain.OrderStatusOpen)
	if err != nil {
		return 0, fmt.Errorf("orderRepo.CloseOpen: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}

func (r *orderRepo) SumOpenSales(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.GetContext(ctx, &total,
		"SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status = $1",
		domain.OrderStatusOpen)
	if err != nil {
		return 0, fmt.Errorf("orderRepo.SumOpenSales: %w", err)
	}
	return total, nil
}

func (r *orderRepo) DeleteByDateRange(ctx context.Context, from, to time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM orders WHERE created_at >= $1 AND created_at < $2", from, to)
	if err != nil {
		return 0, fmt.Errorf("orderRepo.DeleteByDateRange: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}
