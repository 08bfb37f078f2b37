package services

import (
	"context"
	"errors"
	"fmt"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
	"gym_crm_backend/pkg/utils"
)

var ErrGroupNotFound = errors.New("group not found")

type CreateGroupRequest struct {
	Name      *string `json:"name" binding:"required"`
	Days      *string `json:"days"`
	TimeStart *string `json:"time_start"`
	TimeEnd   *string `json:"time_end"`
	Comment   *string `json:"comment"`
}

type UpdateGroupRequest struct {
	Name      utils.Optional[string] `json:"name"`
	Days      utils.Optional[string] `json:"days"`
	TimeStart utils.Optional[string] `json:"time_start"`
	TimeEnd   utils.Optional[string] `json:"time_end"`
	Comment   utils.Optional[string] `json:"comment"`
}

type GroupService interface {
	CreateGroup(ctx context.Context, req CreateGroupRequest) (*models.Group, error)
	GetGroupByID(ctx context.Context, groupID int64) (*models.Group, error)
	GetGroups(ctx context.Context) ([]models.Group, error)
	UpdateGroup(ctx context.Context, groupID int64, req UpdateGroupRequest) (*models.Group, error)
	DeleteGroup(ctx context.Context, groupID int64) error
}

type groupService struct {
	groupRepo repositories.GroupRepository
	tx        repositories.TxRunner
}

func NewGroupService(repo repositories.GroupRepository, tx repositories.TxRunner) GroupService {
	return &groupService{groupRepo: repo, tx: tx}
}

func (s *groupService) CreateGroup(ctx context.Context, req CreateGroupRequest) (*models.Group, error) {
	if req.Name == nil {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	group := &models.Group{
		Name:      *req.Name,
		Days:      req.Days,
		TimeStart: req.TimeStart,
		TimeEnd:   req.TimeEnd,
		Comment:   req.Comment,
	}

	var created *models.Group
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		id, err := s.groupRepo.CreateGroup(ctx, ex, group)
		if err != nil {
			return fmt.Errorf("failed to create group in repository: %w", err)
		}
		created, err = s.groupRepo.GetGroupByID(ctx, ex, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *groupService) GetGroupByID(ctx context.Context, groupID int64) (*models.Group, error) {
	var group *models.Group
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		var err error
		group, err = s.groupRepo.GetGroupByID(ctx, ex, groupID)
		return err
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group by ID: %w", err)
	}
	return group, nil
}

func (s *groupService) GetGroups(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		var err error
		groups, err = s.groupRepo.GetGroups(ctx, ex)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}
	return groups, nil
}

func (s *groupService) UpdateGroup(ctx context.Context, groupID int64, req UpdateGroupRequest) (*models.Group, error) {
	var updated *models.Group
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		group, err := s.groupRepo.GetGroupByID(ctx, ex, groupID)
		if err != nil {
			return err
		}
		if err := applyField("name", req.Name, &group.Name); err != nil {
			return err
		}
		req.Days.ApplyToNullable(&group.Days)
		req.TimeStart.ApplyToNullable(&group.TimeStart)
		req.TimeEnd.ApplyToNullable(&group.TimeEnd)
		req.Comment.ApplyToNullable(&group.Comment)

		if err := s.groupRepo.UpdateGroup(ctx, ex, group); err != nil {
			return err
		}
		updated, err = s.groupRepo.GetGroupByID(ctx, ex, groupID)
		return err
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		if errors.Is(err, ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	return updated, nil
}

func (s *groupService) DeleteGroup(ctx context.Context, groupID int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		return s.groupRepo.DeleteGroup(ctx, ex, groupID)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrGroupNotFound
		}
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}
