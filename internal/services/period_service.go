package services

import (
	"context"
	"errors"
	"fmt"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
	"gym_crm_backend/pkg/utils"
)

var (
	ErrPeriodNotFound    = errors.New("period not found")
	ErrPeriodValueExists = errors.New("period value already exists")
)

type CreatePeriodRequest struct {
	Label     *string  `json:"label" binding:"required"`
	Value     *string  `json:"value" binding:"required"`
	Months    *int     `json:"months" binding:"required"`
	Price     *float64 `json:"price" binding:"required"`
	Trainings *int     `json:"trainings" binding:"required"`
}

type UpdatePeriodRequest struct {
	Label     utils.Optional[string]  `json:"label"`
	Value     utils.Optional[string]  `json:"value"`
	Months    utils.Optional[int]     `json:"months"`
	Price     utils.Optional[float64] `json:"price"`
	Trainings utils.Optional[int]     `json:"trainings"`
}

type PeriodService interface {
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (*models.Period, error)
	GetPeriodByID(ctx context.Context, periodID int64) (*models.Period, error)
	GetPeriods(ctx context.Context) ([]models.Period, error)
	UpdatePeriod(ctx context.Context, periodID int64, req UpdatePeriodRequest) (*models.Period, error)
	DeletePeriod(ctx context.Context, periodID int64) error
}

type periodService struct {
	periodRepo repositories.PeriodRepository
	tx         repositories.TxRunner
}

func NewPeriodService(repo repositories.PeriodRepository, tx repositories.TxRunner) PeriodService {
	return &periodService{periodRepo: repo, tx: tx}
}

func (s *periodService) CreatePeriod(ctx context.Context, req CreatePeriodRequest) (*models.Period, error) {
	if req.Label == nil || req.Value == nil || req.Months == nil || req.Price == nil || req.Trainings == nil {
		return nil, fmt.Errorf("%w: label, value, months, price and trainings are required", ErrValidation)
	}
	period := &models.Period{
		Label:     *req.Label,
		Value:     *req.Value,
		Months:    *req.Months,
		Price:     *req.Price,
		Trainings: *req.Trainings,
	}

	var created *models.Period
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		id, err := s.periodRepo.CreatePeriod(ctx, ex, period)
		if err != nil {
			return err
		}
		created, err = s.periodRepo.GetPeriodByID(ctx, ex, id)
		return err
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrPeriodValueExists
		}
		return nil, fmt.Errorf("failed to create period: %w", err)
	}
	return created, nil
}

func (s *periodService) GetPeriodByID(ctx context.Context, periodID int64) (*models.Period, error) {
	var period *models.Period
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		var err error
		period, err = s.periodRepo.GetPeriodByID(ctx, ex, periodID)
		return err
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, fmt.Errorf("failed to get period by ID: %w", err)
	}
	return period, nil
}

func (s *periodService) GetPeriods(ctx context.Context) ([]models.Period, error) {
	var periods []models.Period
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		var err error
		periods, err = s.periodRepo.GetPeriods(ctx, ex)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get periods: %w", err)
	}
	return periods, nil
}

func (s *periodService) UpdatePeriod(ctx context.Context, periodID int64, req UpdatePeriodRequest) (*models.Period, error) {
	var updated *models.Period
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		period, err := s.periodRepo.GetPeriodByID(ctx, ex, periodID)
		if err != nil {
			return err
		}
		if err := errors.Join(
			applyField("label", req.Label, &period.Label),
			applyField("value", req.Value, &period.Value),
			applyField("months", req.Months, &period.Months),
			applyField("price", req.Price, &period.Price),
			applyField("trainings", req.Trainings, &period.Trainings),
		); err != nil {
			return err
		}

		if err := s.periodRepo.UpdatePeriod(ctx, ex, period); err != nil {
			return err
		}
		updated, err = s.periodRepo.GetPeriodByID(ctx, ex, periodID)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrPeriodNotFound
		case errors.Is(err, repositories.ErrDuplicateKey):
			return nil, ErrPeriodValueExists
		case errors.Is(err, ErrValidation):
			return nil, err
		}
		return nil, fmt.Errorf("failed to update period: %w", err)
	}
	return updated, nil
}

func (s *periodService) DeletePeriod(ctx context.Context, periodID int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		return s.periodRepo.DeletePeriod(ctx, ex, periodID)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPeriodNotFound
		}
		return fmt.Errorf("failed to delete period: %w", err)
	}
	return nil
}
