package services

import (
	"context"
	"errors"
	"fmt"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
	"gym_crm_backend/pkg/utils"
)

var ErrTrainerNotFound = errors.New("trainer not found")

type CreateTrainerRequest struct {
	Name    *string `json:"name" binding:"required"`
	Phone   *string `json:"phone"`
	Comment *string `json:"comment"`
}

type UpdateTrainerRequest struct {
	Name    utils.Optional[string] `json:"name"`
	Phone   utils.Optional[string] `json:"phone"`
	Comment utils.Optional[string] `json:"comment"`
}

type TrainerService interface {
	CreateTrainer(ctx context.Context, req CreateTrainerRequest) (*models.Trainer, error)
	GetTrainerByID(ctx context.Context, trainerID int64) (*models.Trainer, error)
	GetTrainers(ctx context.Context) ([]models.Trainer, error)
	UpdateTrainer(ctx context.Context, trainerID int64, req UpdateTrainerRequest) (*models.Trainer, error)
	DeleteTrainer(ctx context.Context, trainerID int64) error
}

type trainerService struct {
	trainerRepo repositories.TrainerRepository
	tx          repositories.TxRunner
}

func NewTrainerService(repo repositories.TrainerRepository, tx repositories.TxRunner) TrainerService {
	return &trainerService{trainerRepo: repo, tx: tx}
}

func (s *trainerService) CreateTrainer(ctx context.Context, req CreateTrainerRequest) (*models.Trainer, error) {
	if req.Name == nil {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	trainer := &models.Trainer{Name: *req.Name, Phone: req.Phone, Comment: req.Comment}

	var created *models.Trainer
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		id, err := s.trainerRepo.CreateTrainer(ctx, ex, trainer)
		if err != nil {
			return fmt.Errorf("failed to create trainer in repository: %w", err)
		}
		created, err = s.trainerRepo.GetTrainerByID(ctx, ex, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *trainerService) GetTrainerByID(ctx context.Context, trainerID int64) (*models.Trainer, error) {
	var trainer *models.Trainer
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		var err error
		trainer, err = s.trainerRepo.GetTrainerByID(ctx, ex, trainerID)
		return err
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, fmt.Errorf("failed to get trainer by ID: %w", err)
	}
	return trainer, nil
}

func (s *trainerService) GetTrainers(ctx context.Context) ([]models.Trainer, error) {
	var trainers []models.Trainer
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		var err error
		trainers, err = s.trainerRepo.GetTrainers(ctx, ex)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get trainers: %w", err)
	}
	return trainers, nil
}

func (s *trainerService) UpdateTrainer(ctx context.Context, trainerID int64, req UpdateTrainerRequest) (*models.Trainer, error) {
	var updated *models.Trainer
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		trainer, err := s.trainerRepo.GetTrainerByID(ctx, ex, trainerID)
		if err != nil {
			return err
		}
		if err := applyField("name", req.Name, &trainer.Name); err != nil {
			return err
		}
		req.Phone.ApplyToNullable(&trainer.Phone)
		req.Comment.ApplyToNullable(&trainer.Comment)

		if err := s.trainerRepo.UpdateTrainer(ctx, ex, trainer); err != nil {
			return err
		}
		updated, err = s.trainerRepo.GetTrainerByID(ctx, ex, trainerID)
		return err
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		if errors.Is(err, ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update trainer: %w", err)
	}
	return updated, nil
}

func (s *trainerService) DeleteTrainer(ctx context.Context, trainerID int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		return s.trainerRepo.DeleteTrainer(ctx, ex, trainerID)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTrainerNotFound
		}
		return fmt.Errorf("failed to delete trainer: %w", err)
	}
	return nil
}
