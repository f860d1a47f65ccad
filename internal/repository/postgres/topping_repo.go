package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"chayen/internal/domain"
	"chayen/internal/port"
)

type toppingRepo struct {
	db *sqlx.DB
}

// NewToppingRepo creates a new PostgreSQL-backed ToppingRepository.
func NewToppingRepo(db *sqlx.DB) port.ToppingRepository {
	return &toppingRepo{db: db}
}

func (r *toppingRepo) Create(ctx context.Context, topping *domain.Topping) error {
	topping.ID = uuid.New()
	topping.CreatedAt = time.Now().UTC()

	query := `INSERT INTO toppings (id, name, price, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query,
		topping.ID, topping.Name, topping.Price, topping.IsActive, topping.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("toppingRepo.Create: %w", err)
	}
	return nil
}

func (r *toppingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topping, error) {
	var topping domain.Topping
	err := r.db.GetContext(ctx, &topping, "SELECT * FROM toppings WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("toppingRepo.GetByID: %w", err)
	}
	return &topping, nil
}

func (r *toppingRepo) GetByName(ctx context.Context, name string) (*domain.Topping, error) {
	var topping domain.Topping
	err := r.db.GetContext(ctx, &topping, "SELECT * FROM toppings WHERE name = $1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("toppingRepo.GetByName: %w", err)
	}
	return &topping, nil
}

func (r *toppingRepo) List(ctx context.Context, activeOnly bool) ([]domain.Topping, error) {
	query := "SELECT * FROM toppings ORDER BY created_at"
	if activeOnly {
		query = "SELECT * FROM toppings WHERE is_active ORDER BY created_at"
	}
	toppings := []domain.Topping{}
	if err := r.db.SelectContext(ctx, &toppings, query); err != nil {
		return nil, fmt.Errorf("toppingRepo.List: %w", err)
	}
	return toppings, nil
}

func (r *toppingRepo) Update(ctx context.Context, topping *domain.Topping) error {
	query := `UPDATE toppings SET name = $1, price = $2, is_active = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query,
		topping.Name, topping.Price, topping.IsActive, topping.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("toppingRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *toppingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "UPDATE toppings SET is_active = FALSE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("toppingRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
