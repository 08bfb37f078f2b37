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
	ErrPaymentNotFound    = errors.New("payment method not found")
	ErrPaymentValueExists = errors.New("payment method value already exists")
)

type CreatePaymentRequest struct {
	Label *string           `json:"label" binding:"required"`
	Value *string           `json:"value" binding:"required"`
	Type  *string           `json:"type"`
	Banks models.StringList `json:"banks"`
}

// UpdatePaymentRequest: a present null or [] for banks clears the list.
type UpdatePaymentRequest struct {
	Label utils.Optional[string]            `json:"label"`
	Value utils.Optional[string]            `json:"value"`
	Type  utils.Optional[string]            `json:"type"`
	Banks utils.Optional[models.StringList] `json:"banks"`
}

type PaymentService interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*models.Payment, error)
	GetPaymentByID(ctx context.Context, paymentID int64) (*models.Payment, error)
	GetPayments(ctx context.Context) ([]models.Payment, error)
	UpdatePayment(ctx context.Context, paymentID int64, req UpdatePaymentRequest) (*models.Payment, error)
	DeletePayment(ctx context.Context, paymentID int64) error
}

type paymentService struct {
	paymentRepo repositories.PaymentRepository
	tx          repositories.TxRunner
}

func NewPaymentService(repo repositories.PaymentRepository, tx repositories.TxRunner) PaymentService {
	return &paymentService{paymentRepo: repo, tx: tx}
}

func (s *paymentService) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*models.Payment, error) {
	if req.Label == nil || req.Value == nil {
		return nil, fmt.Errorf("%w: label and value are required", ErrValidation)
	}
	payment := &models.Payment{
		Label: *req.Label,
		Value: *req.Value,
		Type:  req.Type,
		Banks: req.Banks,
	}

	var created *models.Payment
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		id, err := s.paymentRepo.CreatePayment(ctx, ex, payment)
		if err != nil {
			return err
		}
		created, err = s.paymentRepo.GetPaymentByID(ctx, ex, id)
		return err
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrPaymentValueExists
		}
		return nil, fmt.Errorf("failed to create payment method: %w", err)
	}
	return created, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID int64) (*models.Payment, error) {
	var payment *models.Payment
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		var err error
		payment, err = s.paymentRepo.GetPaymentByID(ctx, ex, paymentID)
		return err
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment method by ID: %w", err)
	}
	return payment, nil
}

func (s *paymentService) GetPayments(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		var err error
		payments, err = s.paymentRepo.GetPayments(ctx, ex)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get payment methods: %w", err)
	}
	return payments, nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, paymentID int64, req UpdatePaymentRequest) (*models.Payment, error) {
	var updated *models.Payment
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		payment, err := s.paymentRepo.GetPaymentByID(ctx, ex, paymentID)
		if err != nil {
			return err
		}
		if err := errors.Join(
			applyField("label", req.Label, &payment.Label),
			applyField("value", req.Value, &payment.Value),
		); err != nil {
			return err
		}
		req.Type.ApplyToNullable(&payment.Type)
		if req.Banks.Set {
			payment.Banks = req.Banks.Value
		}

		if err := s.paymentRepo.UpdatePayment(ctx, ex, payment); err != nil {
			return err
		}
		updated, err = s.paymentRepo.GetPaymentByID(ctx, ex, paymentID)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrPaymentNotFound
		case errors.Is(err, repositories.ErrDuplicateKey):
			return nil, ErrPaymentValueExists
		case errors.Is(err, ErrValidation):
			return nil, err
		}
		return nil, fmt.Errorf("failed to update payment method: %w", err)
	}
	return updated, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context, ex repositories.SQLExecutor) error {
		return s.paymentRepo.DeletePayment(ctx, ex, paymentID)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("failed to delete payment method: %w", err)
	}
	return nil
}
