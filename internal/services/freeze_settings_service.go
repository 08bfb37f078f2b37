package services

import (
	"context"
	"errors"
	"fmt"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
	"gym_crm_backend/pkg/utils"
)

var ErrFreezeSettingsNotFound = errors.New("freeze settings not found")

type CreateFreezeSettingsRequest struct {
	MaxDays        *int              `json:"maxDays"`
	Reasons        models.StringList `json:"reasons"`
	RequireConfirm *bool             `json:"requireConfirm"`
}

type UpdateFreezeSettingsRequest struct {
	MaxDays        utils.Optional[int]               `json:"maxDays"`
	Reasons        utils.Optional[models.StringList] `json:"reasons"`
	RequireConfirm utils.Optional[bool]              `json:"requireConfirm"`
}

type FreezeSettingsService interface {
	CreateFreezeSettings(ctx context.Context, req CreateFreezeSettingsRequest) (*models.FreezeSettings, error)
	GetFreezeSettingsByID(ctx context.Context, id int64) (*models.FreezeSettings, error)
	GetFreezeSettings(ctx context.Context) ([]models.FreezeSettings, error)
	UpdateFreezeSettings(ctx context.Context, id int64, req UpdateFreezeSettingsRequest) (*models.FreezeSettings, error)
	DeleteFreezeSettings(ctx context.Context, id int64) error
}

type freezeSettingsService struct {
	settingsRepo repositories.FreezeSettingsRepository
	tx           repositories.TxRunner
}

func NewFreezeSettingsService(repo repositories.FreezeSettingsRepository, tx repositories.TxRunner) FreezeSettingsService {
	return &freezeSettingsService{settingsRepo: repo, tx: tx}
}

func (s *freezeSettingsService) CreateFreezeSettings(ctx context.Context, req CreateFreezeSettingsRequest) (*models.FreezeSettings, error) {
	settings := &models.FreezeSettings{
		MaxDays:        valueOr(req.MaxDays, models.DefaultFreezeMaxDays),
		Reasons:        req.Reasons,
		RequireConfirm: valueOr(req.RequireConfirm, false),
	}

	var created *models.FreezeSettings
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		id, err := s.settingsRepo.CreateFreezeSettings(ctx, ex, settings)
		if err != nil {
			return err
		}
		created, err = s.settingsRepo.GetFreezeSettingsByID(ctx, ex, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create freeze settings: %w", err)
	}
	return created, nil
}

func (s *freezeSettingsService) GetFreezeSettingsByID(ctx context.Context, id int64) (*models.FreezeSettings, error) {
	var settings *models.FreezeSettings
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		var err error
		settings, err = s.settingsRepo.GetFreezeSettingsByID(ctx, ex, id)
		return err
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFreezeSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get freeze settings by ID: %w", err)
	}
	return settings, nil
}

func (s *freezeSettingsService) GetFreezeSettings(ctx context.Context) ([]models.FreezeSettings, error) {
	var all []models.FreezeSettings
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		var err error
		all, err = s.settingsRepo.GetFreezeSettings(ctx, ex)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get freeze settings: %w", err)
	}
	return all, nil
}

func (s *freezeSettingsService) UpdateFreezeSettings(ctx context.Context, id int64, req UpdateFreezeSettingsRequest) (*models.FreezeSettings, error) {
	var updated *models.FreezeSettings
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		settings, err := s.settingsRepo.GetFreezeSettingsByID(ctx, ex, id)
		if err != nil {
			return err
		}
		if err := errors.Join(
			applyField("maxDays", req.MaxDays, &settings.MaxDays),
			applyField("requireConfirm", req.RequireConfirm, &settings.RequireConfirm),
		); err != nil {
			return err
		}
		if req.Reasons.Set {
			settings.Reasons = req.Reasons.Value
		}

		if err := s.settingsRepo.UpdateFreezeSettings(ctx, ex, settings); err != nil {
			return err
		}
		updated, err = s.settingsRepo.GetFreezeSettingsByID(ctx, ex, id)
		return err
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFreezeSettingsNotFound
		}
		if errors.Is(err, ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update freeze settings: %w", err)
	}
	return updated, nil
}

func (s *freezeSettingsService) DeleteFreezeSettings(ctx context.Context, id int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		return s.settingsRepo.DeleteFreezeSettings(ctx, ex, id)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrFreezeSettingsNotFound
		}
		return fmt.Errorf("failed to delete freeze settings: %w", err)
	}
	return nil
}
