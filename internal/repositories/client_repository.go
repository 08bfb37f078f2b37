package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gym_crm_backend/internal/models"
)

// ClientRepository defines the interface for client-related database operations.
type ClientRepository interface {
	CreateClient(ctx context.Context, executor SQLExecutor, client *models.Client) (int64, error)
	GetClientByID(ctx context.Context, executor SQLExecutor, id int64) (*models.Client, error)
	GetClients(ctx context.Context, executor SQLExecutor) ([]models.Client, error)
	UpdateClient(ctx context.Context, executor SQLExecutor, client *models.Client) error
	DeleteClient(ctx context.Context, executor SQLExecutor, id int64) error
}

type clientRepository struct{}

// NewClientRepository creates a new instance of ClientRepository.
func NewClientRepository() ClientRepository {
	return &clientRepository{}
}

const clientColumns = `id, contract_number, name, surname, phone, address, birth_date, start_date, end_date,
	subscription_period, payment_amount, payment_method, "group", comment, status, paid, total_sessions,
	has_discount, discount_reason, deleted, trainer, created_at, updated_at`

func scanClient(row scanner, client *models.Client) error {
	return row.Scan(
		&client.ID, &client.ContractNumber, &client.Name, &client.Surname, &client.Phone, &client.Address,
		&client.BirthDate, &client.StartDate, &client.EndDate, &client.SubscriptionPeriod, &client.PaymentAmount,
		&client.PaymentMethod, &client.Group, &client.Comment, &client.Status, &client.Paid, &client.TotalSessions,
		&client.HasDiscount, &client.DiscountReason, &client.Deleted, &client.Trainer, &client.CreatedAt, &client.UpdatedAt,
	)
}

// CreateClient inserts a new client into the database.
func (r *clientRepository) CreateClient(ctx context.Context, executor SQLExecutor, client *models.Client) (int64, error) {
	query := `INSERT INTO clients (contract_number, name, surname, phone, address, birth_date, start_date, end_date,
	            subscription_period, payment_amount, payment_method, "group", comment, status, paid, total_sessions,
	            has_discount, discount_reason, deleted, trainer, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	          RETURNING id`

	currentTime := time.Now()
	client.CreatedAt = currentTime
	client.UpdatedAt = currentTime

	err := executor.QueryRowContext(ctx, query,
		client.ContractNumber, client.Name, client.Surname, client.Phone, client.Address, client.BirthDate,
		client.StartDate, client.EndDate, client.SubscriptionPeriod, client.PaymentAmount, client.PaymentMethod,
		client.Group, client.Comment, client.Status, client.Paid, client.TotalSessions, client.HasDiscount,
		client.DiscountReason, client.Deleted, client.Trainer, client.CreatedAt, client.UpdatedAt,
	).Scan(&client.ID)
	if err != nil {
		return 0, writeError(err, "creating client")
	}
	return client.ID, nil
}

// GetClientByID retrieves a client by their ID.
func (r *clientRepository) GetClientByID(ctx context.Context, executor SQLExecutor, id int64) (*models.Client, error) {
	client := &models.Client{}
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	err := scanClient(executor.QueryRowContext(ctx, query, id), client)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting client by ID %d: %v", ErrDatabaseError, id, err)
	}
	return client, nil
}

// GetClients retrieves every client ordered by id. Soft-deleted rows are included.
func (r *clientRepository) GetClients(ctx context.Context, executor SQLExecutor) ([]models.Client, error) {
	clients := []models.Client{}

	rows, err := executor.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying clients: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var client models.Client
		if err := scanClient(rows, &client); err != nil {
			return nil, fmt.Errorf("%w: scanning client: %v", ErrDatabaseError, err)
		}
		clients = append(clients, client)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating client rows: %v", ErrDatabaseError, err)
	}
	return clients, nil
}

// UpdateClient overwrites every column of an existing client.
func (r *clientRepository) UpdateClient(ctx context.Context, executor SQLExecutor, client *models.Client) error {
	query := `UPDATE clients SET
	            contract_number = $1, name = $2, surname = $3, phone = $4, address = $5, birth_date = $6,
	            start_date = $7, end_date = $8, subscription_period = $9, payment_amount = $10, payment_method = $11,
	            "group" = $12, comment = $13, status = $14, paid = $15, total_sessions = $16, has_discount = $17,
	            discount_reason = $18, deleted = $19, trainer = $20, updated_at = $21
	          WHERE id = $22`

	client.UpdatedAt = time.Now()
	action := fmt.Sprintf("updating client ID %d", client.ID)

	result, err := executor.ExecContext(ctx, query,
		client.ContractNumber, client.Name, client.Surname, client.Phone, client.Address, client.BirthDate,
		client.StartDate, client.EndDate, client.SubscriptionPeriod, client.PaymentAmount, client.PaymentMethod,
		client.Group, client.Comment, client.Status, client.Paid, client.TotalSessions, client.HasDiscount,
		client.DiscountReason, client.Deleted, client.Trainer, client.UpdatedAt, client.ID,
	)
	if err != nil {
		return writeError(err, action)
	}
	return affectedOne(result, action)
}

// DeleteClient removes a client from the database.
func (r *clientRepository) DeleteClient(ctx context.Context, executor SQLExecutor, id int64) error {
	return deleteByID(ctx, executor, "clients", id)
}
