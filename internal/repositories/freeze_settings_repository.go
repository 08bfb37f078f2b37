package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gym_crm_backend/internal/models"
)

// FreezeSettingsRepository defines the interface for freeze settings database operations.
type FreezeSettingsRepository interface {
	CreateFreezeSettings(ctx context.Context, executor SQLExecutor, settings *models.FreezeSettings) (int64, error)
	GetFreezeSettingsByID(ctx context.Context, executor SQLExecutor, id int64) (*models.FreezeSettings, error)
	GetFreezeSettings(ctx context.Context, executor SQLExecutor) ([]models.FreezeSettings, error)
	UpdateFreezeSettings(ctx context.Context, executor SQLExecutor, settings *models.FreezeSettings) error
	DeleteFreezeSettings(ctx context.Context, executor SQLExecutor, id int64) error
}

type freezeSettingsRepository struct{}

// NewFreezeSettingsRepository creates a new instance of FreezeSettingsRepository.
func NewFreezeSettingsRepository() FreezeSettingsRepository {
	return &freezeSettingsRepository{}
}

const freezeSettingsColumns = `id, max_days, reasons, require_confirm, created_at, updated_at`

func scanFreezeSettings(row scanner, s *models.FreezeSettings) error {
	return row.Scan(&s.ID, &s.MaxDays, &s.Reasons, &s.RequireConfirm, &s.CreatedAt, &s.UpdatedAt)
}

func (r *freezeSettingsRepository) CreateFreezeSettings(ctx context.Context, executor SQLExecutor, settings *models.FreezeSettings) (int64, error) {
	query := `INSERT INTO freeze_settings (max_days, reasons, require_confirm, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`

	now := time.Now()
	settings.CreatedAt, settings.UpdatedAt = now, now

	err := executor.QueryRowContext(ctx, query,
		settings.MaxDays, settings.Reasons, settings.RequireConfirm, settings.CreatedAt, settings.UpdatedAt,
	).Scan(&settings.ID)
	if err != nil {
		return 0, writeError(err, "creating freeze settings")
	}
	return settings.ID, nil
}

func (r *freezeSettingsRepository) GetFreezeSettingsByID(ctx context.Context, executor SQLExecutor, id int64) (*models.FreezeSettings, error) {
	settings := &models.FreezeSettings{}
	query := `SELECT ` + freezeSettingsColumns + ` FROM freeze_settings WHERE id = $1`
	if err := scanFreezeSettings(executor.QueryRowContext(ctx, query, id), settings); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting freeze settings by ID %d: %v", ErrDatabaseError, id, err)
	}
	return settings, nil
}

func (r *freezeSettingsRepository) GetFreezeSettings(ctx context.Context, executor SQLExecutor) ([]models.FreezeSettings, error) {
	all := []models.FreezeSettings{}
	rows, err := executor.QueryContext(ctx, `SELECT `+freezeSettingsColumns+` FROM freeze_settings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying freeze settings: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var s models.FreezeSettings
		if err := scanFreezeSettings(rows, &s); err != nil {
			return nil, fmt.Errorf("%w: scanning freeze settings: %v", ErrDatabaseError, err)
		}
		all = append(all, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating freeze settings rows: %v", ErrDatabaseError, err)
	}
	return all, nil
}

func (r *freezeSettingsRepository) UpdateFreezeSettings(ctx context.Context, executor SQLExecutor, settings *models.FreezeSettings) error {
	query := `UPDATE freeze_settings SET max_days = $1, reasons = $2, require_confirm = $3, updated_at = $4 WHERE id = $5`

	settings.UpdatedAt = time.Now()
	action := fmt.Sprintf("updating freeze settings ID %d", settings.ID)

	result, err := executor.ExecContext(ctx, query,
		settings.MaxDays, settings.Reasons, settings.RequireConfirm, settings.UpdatedAt, settings.ID,
	)
	if err != nil {
		return writeError(err, action)
	}
	return affectedOne(result, action)
}

func (r *freezeSettingsRepository) DeleteFreezeSettings(ctx context.Context, executor SQLExecutor, id int64) error {
	return deleteByID(ctx, executor, "freeze_settings", id)
}
