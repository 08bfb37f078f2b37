package services

import (
	"context"
	"errors"
	"fmt"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
	"gym_crm_backend/pkg/utils"
)

var ErrClientNotFound = errors.New("client not found")

// --- Client DTOs ---
type CreateClientRequest struct {
	ContractNumber     *string `json:"contract_number"`
	Name               *string `json:"name" binding:"required"`
	Surname            *string `json:"surname" binding:"required"`
	Phone              *string `json:"phone" binding:"required"`
	Address            *string `json:"address"`
	BirthDate          *string `json:"birth_date"`
	StartDate          *string `json:"start_date"`
	EndDate            *string `json:"end_date"`
	SubscriptionPeriod *string `json:"subscription_period"`
	PaymentAmount      *string `json:"payment_amount"`
	PaymentMethod      *string `json:"payment_method"`
	Group              *string `json:"group"`
	Comment            *string `json:"comment"`
	Status             *string `json:"status"`
	Paid               *bool   `json:"paid"`
	TotalSessions      *int    `json:"total_sessions"`
	HasDiscount        *bool   `json:"has_discount"`
	DiscountReason     *string `json:"discount_reason"`
	Deleted            *bool   `json:"deleted"`
	Trainer            *string `json:"trainer"`
}

// UpdateClientRequest only touches the keys present in the payload.
type UpdateClientRequest struct {
	ContractNumber     utils.Optional[string] `json:"contract_number"`
	Name               utils.Optional[string] `json:"name"`
	Surname            utils.Optional[string] `json:"surname"`
	Phone              utils.Optional[string] `json:"phone"`
	Address            utils.Optional[string] `json:"address"`
	BirthDate          utils.Optional[string] `json:"birth_date"`
	StartDate          utils.Optional[string] `json:"start_date"`
	EndDate            utils.Optional[string] `json:"end_date"`
	SubscriptionPeriod utils.Optional[string] `json:"subscription_period"`
	PaymentAmount      utils.Optional[string] `json:"payment_amount"`
	PaymentMethod      utils.Optional[string] `json:"payment_method"`
	Group              utils.Optional[string] `json:"group"`
	Comment            utils.Optional[string] `json:"comment"`
	Status             utils.Optional[string] `json:"status"`
	Paid               utils.Optional[bool]   `json:"paid"`
	TotalSessions      utils.Optional[int]    `json:"total_sessions"`
	HasDiscount        utils.Optional[bool]   `json:"has_discount"`
	DiscountReason     utils.Optional[string] `json:"discount_reason"`
	Deleted            utils.Optional[bool]   `json:"deleted"`
	Trainer            utils.Optional[string] `json:"trainer"`
}

// --- ClientService Interface ---
type ClientService interface {
	CreateClient(ctx context.Context, req CreateClientRequest) (*models.Client, error)
	GetClientByID(ctx context.Context, clientID int64) (*models.Client, error)
	GetClients(ctx context.Context) ([]models.Client, error)
	UpdateClient(ctx context.Context, clientID int64, req UpdateClientRequest) (*models.Client, error)
	DeleteClient(ctx context.Context, clientID int64) error
}

type clientService struct {
	clientRepo repositories.ClientRepository
	tx         repositories.TxRunner
}

// NewClientService creates a new instance of ClientService.
func NewClientService(repo repositories.ClientRepository, tx repositories.TxRunner) ClientService {
	return &clientService{clientRepo: repo, tx: tx}
}

func (s *clientService) CreateClient(ctx context.Context, req CreateClientRequest) (*models.Client, error) {
	if req.Name == nil || req.Surname == nil || req.Phone == nil {
		return nil, fmt.Errorf("%w: name, surname and phone are required", ErrValidation)
	}
	client := &models.Client{
		ContractNumber:     req.ContractNumber,
		Name:               *req.Name,
		Surname:            *req.Surname,
		Phone:              *req.Phone,
		Address:            req.Address,
		BirthDate:          req.BirthDate,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		SubscriptionPeriod: req.SubscriptionPeriod,
		PaymentAmount:      req.PaymentAmount,
		PaymentMethod:      req.PaymentMethod,
		Group:              req.Group,
		Comment:            req.Comment,
		Status:             valueOr(req.Status, models.DefaultClientStatus),
		Paid:               valueOr(req.Paid, false),
		TotalSessions:      valueOr(req.TotalSessions, 0),
		HasDiscount:        valueOr(req.HasDiscount, false),
		DiscountReason:     req.DiscountReason,
		Deleted:            valueOr(req.Deleted, false),
		Trainer:            req.Trainer,
	}

	var created *models.Client
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		id, err := s.clientRepo.CreateClient(ctx, ex, client)
		if err != nil {
			return fmt.Errorf("failed to create client in repository: %w", err)
		}
		created, err = s.clientRepo.GetClientByID(ctx, ex, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID int64) (*models.Client, error) {
	var client *models.Client
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		var err error
		client, err = s.clientRepo.GetClientByID(ctx, ex, clientID)
		return err
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client by ID: %w", err)
	}
	return client, nil
}

func (s *clientService) GetClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		var err error
		clients, err = s.clientRepo.GetClients(ctx, ex)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID int64, req UpdateClientRequest) (*models.Client, error) {
	var updated *models.Client
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		client, err := s.clientRepo.GetClientByID(ctx, ex, clientID)
		if err != nil {
			return err
		}
		if err := mergeClient(client, req); err != nil {
			return err
		}
		if err := s.clientRepo.UpdateClient(ctx, ex, client); err != nil {
			return err
		}
		updated, err = s.clientRepo.GetClientByID(ctx, ex, clientID)
		return err
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		if errors.Is(err, ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return updated, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		return s.clientRepo.DeleteClient(ctx, ex, clientID)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

func mergeClient(client *models.Client, req UpdateClientRequest) error {
	req.ContractNumber.ApplyToNullable(&client.ContractNumber)
	req.Address.ApplyToNullable(&client.Address)
	req.BirthDate.ApplyToNullable(&client.BirthDate)
	req.StartDate.ApplyToNullable(&client.StartDate)
	req.EndDate.ApplyToNullable(&client.EndDate)
	req.SubscriptionPeriod.ApplyToNullable(&client.SubscriptionPeriod)
	req.PaymentAmount.ApplyToNullable(&client.PaymentAmount)
	req.PaymentMethod.ApplyToNullable(&client.PaymentMethod)
	req.Group.ApplyToNullable(&client.Group)
	req.Comment.ApplyToNullable(&client.Comment)
	req.DiscountReason.ApplyToNullable(&client.DiscountReason)
	req.Trainer.ApplyToNullable(&client.Trainer)

	return errors.Join(
		applyField("name", req.Name, &client.Name),
		applyField("surname", req.Surname, &client.Surname),
		applyField("phone", req.Phone, &client.Phone),
		applyField("status", req.Status, &client.Status),
		applyField("paid", req.Paid, &client.Paid),
		applyField("total_sessions", req.TotalSessions, &client.TotalSessions),
		applyField("has_discount", req.HasDiscount, &client.HasDiscount),
		applyField("deleted", req.Deleted, &client.Deleted),
	)
}
