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

type staffRepo struct {
	db *sqlx.DB
}

// NewStaffRepo creates a new PostgreSQL-backed StaffRepository.
func NewStaffRepo(db *sqlx.DB) port.StaffRepository {
	return &staffRepo{db: db}
}

func (r *staffRepo) Create(ctx context.Context, staff *domain.Staff) error {
	staff.ID = uuid.New()
	staff.CreatedAt = time.Now().UTC()

	query := `INSERT INTO staffs (id, name, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query,
		staff.ID, staff.Name, staff.Role, staff.IsActive, staff.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("staffRepo.Create: %w", err)
	}
	return nil
}

func (r *staffRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Staff, error) {
	var staff domain.Staff
	err := r.db.GetContext(ctx, &staff, "SELECT * FROM staffs WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("staffRepo.GetByID: %w", err)
	}
	return &staff, nil
}

func (r *staffRepo) List(ctx context.Context, activeOnly bool) ([]domain.Staff, error) {
	query := "SELECT * FROM staffs ORDER BY created_at"
	if activeOnly {
		query = "SELECT * FROM staffs WHERE is_active ORDER BY created_at"
	}
	staffs := []domain.Staff{}
	if err := r.db.SelectContext(ctx, &staffs, query); err != nil {
		return nil, fmt.Errorf("staffRepo.List: %w", err)
	}
	return staffs, nil
}

func (r *staffRepo) Update(ctx context.Context, staff *domain.Staff) error {
	query := `UPDATE staffs SET name = $1, role = $2, is_active = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query,
		staff.Name, staff.Role, staff.IsActive, staff.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("staffRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *staffRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "UPDATE staffs SET is_active = FALSE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("staffRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
