package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gym_crm_backend/internal/models"
)

// TrainerRepository defines the interface for trainer-related database operations.
type TrainerRepository interface {
	CreateTrainer(ctx context.Context, executor SQLExecutor, trainer *models.Trainer) (int64, error)
	GetTrainerByID(ctx context.Context, executor SQLExecutor, id int64) (*models.Trainer, error)
	GetTrainers(ctx context.Context, executor SQLExecutor) ([]models.Trainer, error)
	UpdateTrainer(ctx context.Context, executor SQLExecutor, trainer *models.Trainer) error
	DeleteTrainer(ctx context.Context, executor SQLExecutor, id int64) error
}

type trainerRepository struct{}

// NewTrainerRepository creates a new instance of TrainerRepository.
func NewTrainerRepository() TrainerRepository {
	return &trainerRepository{}
}

const trainerColumns = `id, name, phone, comment, created_at, updated_at`

func scanTrainer(row scanner, t *models.Trainer) error {
	return row.Scan(&t.ID, &t.Name, &t.Phone, &t.Comment, &t.CreatedAt, &t.UpdatedAt)
}

func (r *trainerRepository) CreateTrainer(ctx context.Context, executor SQLExecutor, trainer *models.Trainer) (int64, error) {
	query := `INSERT INTO trainers (name, phone, comment, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`

	now := time.Now()
	trainer.CreatedAt, trainer.UpdatedAt = now, now

	err := executor.QueryRowContext(ctx, query,
		trainer.Name, trainer.Phone, trainer.Comment, trainer.CreatedAt, trainer.UpdatedAt,
	).Scan(&trainer.ID)
	if err != nil {
		return 0, writeError(err, "creating trainer")
	}
	return trainer.ID, nil
}

func (r *trainerRepository) GetTrainerByID(ctx context.Context, executor SQLExecutor, id int64) (*models.Trainer, error) {
	trainer := &models.Trainer{}
	err := scanTrainer(executor.QueryRowContext(ctx, `SELECT `+trainerColumns+` FROM trainers WHERE id = $1`, id), trainer)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting trainer by ID %d: %v", ErrDatabaseError, id, err)
	}
	return trainer, nil
}

func (r *trainerRepository) GetTrainers(ctx context.Context, executor SQLExecutor) ([]models.Trainer, error) {
	trainers := []models.Trainer{}
	rows, err := executor.QueryContext(ctx, `SELECT `+trainerColumns+` FROM trainers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying trainers: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var t models.Trainer
		if err := scanTrainer(rows, &t); err != nil {
			return nil, fmt.Errorf("%w: scanning trainer: %v", ErrDatabaseError, err)
		}
		trainers = append(trainers, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating trainer rows: %v", ErrDatabaseError, err)
	}
	return trainers, nil
}

func (r *trainerRepository) UpdateTrainer(ctx context.Context, executor SQLExecutor, trainer *models.Trainer) error {
	query := `UPDATE trainers SET name = $1, phone = $2, comment = $3, updated_at = $4 WHERE id = $5`

	trainer.UpdatedAt = time.Now()
	action := fmt.Sprintf("updating trainer ID %d", trainer.ID)

	result, err := executor.ExecContext(ctx, query, trainer.Name, trainer.Phone, trainer.Comment, trainer.UpdatedAt, trainer.ID)
	if err != nil {
		return writeError(err, action)
	}
	return affectedOne(result, action)
}

func (r *trainerRepository) DeleteTrainer(ctx context.Context, executor SQLExecutor, id int64) error {
	return deleteByID(ctx, executor, "trainers", id)
}
