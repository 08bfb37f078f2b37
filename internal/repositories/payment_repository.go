package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gym_crm_backend/internal/models"
)

// PaymentRepository defines the interface for payment method database operations.
// Banks travel through models.StringList, so they are encoded on write and
// decoded on every scan.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, executor SQLExecutor, payment *models.Payment) (int64, error)
	GetPaymentByID(ctx context.Context, executor SQLExecutor, id int64) (*models.Payment, error)
	GetPayments(ctx context.Context, executor SQLExecutor) ([]models.Payment, error)
	UpdatePayment(ctx context.Context, executor SQLExecutor, payment *models.Payment) error
	DeletePayment(ctx context.Context, executor SQLExecutor, id int64) error
}

type paymentRepository struct{}

// NewPaymentRepository creates a new instance of PaymentRepository.
func NewPaymentRepository() PaymentRepository {
	return &paymentRepository{}
}

const paymentColumns = `id, label, value, type, banks, created_at, updated_at`

func scanPayment(row scanner, p *models.Payment) error {
	return row.Scan(&p.ID, &p.Label, &p.Value, &p.Type, &p.Banks, &p.CreatedAt, &p.UpdatedAt)
}

func (r *paymentRepository) CreatePayment(ctx context.Context, executor SQLExecutor, payment *models.Payment) (int64, error) {
	query := `INSERT INTO payments (label, value, type, banks, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	now := time.Now()
	payment.CreatedAt, payment.UpdatedAt = now, now

	err := executor.QueryRowContext(ctx, query,
		payment.Label, payment.Value, payment.Type, payment.Banks, payment.CreatedAt, payment.UpdatedAt,
	).Scan(&payment.ID)
	if err != nil {
		return 0, writeError(err, "creating payment")
	}
	return payment.ID, nil
}

func (r *paymentRepository) GetPaymentByID(ctx context.Context, executor SQLExecutor, id int64) (*models.Payment, error) {
	payment := &models.Payment{}
	err := scanPayment(executor.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id), payment)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting payment by ID %d: %v", ErrDatabaseError, id, err)
	}
	return payment, nil
}

func (r *paymentRepository) GetPayments(ctx context.Context, executor SQLExecutor) ([]models.Payment, error) {
	payments := []models.Payment{}
	rows, err := executor.QueryContext(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying payments: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Payment
		if err := scanPayment(rows, &p); err != nil {
			return nil, fmt.Errorf("%w: scanning payment: %v", ErrDatabaseError, err)
		}
		payments = append(payments, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating payment rows: %v", ErrDatabaseError, err)
	}
	return payments, nil
}

func (r *paymentRepository) UpdatePayment(ctx context.Context, executor SQLExecutor, payment *models.Payment) error {
	query := `UPDATE payments SET label = $1, value = $2, type = $3, banks = $4, updated_at = $5 WHERE id = $6`

	payment.UpdatedAt = time.Now()
	action := fmt.Sprintf("updating payment ID %d", payment.ID)

	result, err := executor.ExecContext(ctx, query,
		payment.Label, payment.Value, payment.Type, payment.Banks, payment.UpdatedAt, payment.ID,
	)
	if err != nil {
		return writeError(err, action)
	}
	return affectedOne(result, action)
}

func (r *paymentRepository) DeletePayment(ctx context.Context, executor SQLExecutor, id int64) error {
	return deleteByID(ctx, executor, "payments", id)
}
