package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrDatabaseError is returned for unexpected database errors.
	// It can be used to wrap more specific driver errors.
	ErrDatabaseError = errors.New("database error")

	// ErrDuplicateKey is returned when an insert/update violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")
)

// SQLExecutor defines an interface that can be satisfied by *sql.DB or *sql.Tx
// This allows repository methods to be used within transactions or with a direct DB connection.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// TxRunner scopes a single storage session around fn. Implementations must
// release the session on every exit path.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, executor SQLExecutor) error) error
}

// scanner is an interface satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// Repositories bundles one repository per table.
type Repositories struct {
	Clients        ClientRepository
	Trainers       TrainerRepository
	Groups         GroupRepository
	Periods        PeriodRepository
	Payments       PaymentRepository
	FreezeSettings FreezeSettingsRepository
}

// NewRepositories returns the PostgreSQL-backed repositories.
func NewRepositories() Repositories {
	return Repositories{
		Clients:        NewClientRepository(),
		Trainers:       NewTrainerRepository(),
		Groups:         NewGroupRepository(),
		Periods:        NewPeriodRepository(),
		Payments:       NewPaymentRepository(),
		FreezeSettings: NewFreezeSettingsRepository(),
	}
}

// writeError classifies an insert/update failure.
func writeError(err error, action string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
	}
	return fmt.Errorf("%w: %s: %v", ErrDatabaseError, action, err)
}

// affectedOne turns a zero rows-affected result into ErrNotFound.
func affectedOne(result sql.Result, action string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for %s: %v", ErrDatabaseError, action, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// deleteByID removes one row of table by id.
func deleteByID(ctx context.Context, executor SQLExecutor, table string, id int64) error {
	action := fmt.Sprintf("deleting %s ID %d", table, id)
	result, err := executor.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDatabaseError, action, err)
	}
	return affectedOne(result, action)
}
