package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gym_crm_backend/internal/models"
)

// PeriodRepository defines the interface for subscription period database operations.
type PeriodRepository interface {
	CreatePeriod(ctx context.Context, executor SQLExecutor, period *models.Period) (int64, error)
	GetPeriodByID(ctx context.Context, executor SQLExecutor, id int64) (*models.Period, error)
	GetPeriods(ctx context.Context, executor SQLExecutor) ([]models.Period, error)
	UpdatePeriod(ctx context.Context, executor SQLExecutor, period *models.Period) error
	DeletePeriod(ctx context.Context, executor SQLExecutor, id int64) error
}

type periodRepository struct{}

// NewPeriodRepository creates a new instance of PeriodRepository.
func NewPeriodRepository() PeriodRepository {
	return &periodRepository{}
}

const periodColumns = `id, label, value, months, price, trainings, created_at, updated_at`

func scanPeriod(row scanner, p *models.Period) error {
	return row.Scan(&p.ID, &p.Label, &p.Value, &p.Months, &p.Price, &p.Trainings, &p.CreatedAt, &p.UpdatedAt)
}

// CreatePeriod inserts a period. A duplicate value yields ErrDuplicateKey.
func (r *periodRepository) CreatePeriod(ctx context.Context, executor SQLExecutor, period *models.Period) (int64, error) {
	query := `INSERT INTO periods (label, value, months, price, trainings, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	now := time.Now()
	period.CreatedAt, period.UpdatedAt = now, now

	err := executor.QueryRowContext(ctx, query,
		period.Label, period.Value, period.Months, period.Price, period.Trainings, period.CreatedAt, period.UpdatedAt,
	).Scan(&period.ID)
	if err != nil {
		return 0, writeError(err, "creating period")
	}
	return period.ID, nil
}

func (r *periodRepository) GetPeriodByID(ctx context.Context, executor SQLExecutor, id int64) (*models.Period, error) {
	period := &models.Period{}
	err := scanPeriod(executor.QueryRowContext(ctx, `SELECT `+periodColumns+` FROM periods WHERE id = $1`, id), period)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting period by ID %d: %v", ErrDatabaseError, id, err)
	}
	return period, nil
}

func (r *periodRepository) GetPeriods(ctx context.Context, executor SQLExecutor) ([]models.Period, error) {
	periods := []models.Period{}
	rows, err := executor.QueryContext(ctx, `SELECT `+periodColumns+` FROM periods ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying periods: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Period
		if err := scanPeriod(rows, &p); err != nil {
			return nil, fmt.Errorf("%w: scanning period: %v", ErrDatabaseError, err)
		}
		periods = append(periods, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating period rows: %v", ErrDatabaseError, err)
	}
	return periods, nil
}

func (r *periodRepository) UpdatePeriod(ctx context.Context, executor SQLExecutor, period *models.Period) error {
	query := `UPDATE periods SET label = $1, value = $2, months = $3, price = $4, trainings = $5, updated_at = $6
	          WHERE id = $7`

	period.UpdatedAt = time.Now()
	action := fmt.Sprintf("updating period ID %d", period.ID)

	result, err := executor.ExecContext(ctx, query,
		period.Label, period.Value, period.Months, period.Price, period.Trainings, period.UpdatedAt, period.ID,
	)
	if err != nil {
		return writeError(err, action)
	}
	return affectedOne(result, action)
}

func (r *periodRepository) DeletePeriod(ctx context.Context, executor SQLExecutor, id int64) error {
	return deleteByID(ctx, executor, "periods", id)
}
