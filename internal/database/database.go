package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gym_crm_backend/internal/metrics"
	"gym_crm_backend/internal/repositories"
	"gym_crm_backend/pkg/utils"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// DefaultTimeout bounds a single storage session when none is configured.
const DefaultTimeout = 5 * time.Second

// Config describes how to reach PostgreSQL. URL wins over the discrete fields.
type Config struct {
	URL          string
	Host         string
	Port         string
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	Timeout      time.Duration
}

// DSN returns the lib/pq connection string.
func (c Config) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Open initializes the connection pool and verifies it with a ping.
func Open(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), timeoutOrDefault(cfg.Timeout))
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	utils.LogInfo("Successfully connected to the database", map[string]interface{}{"host": cfg.Host, "db": cfg.DBName})
	return db, nil
}

// Store owns the pool handle and hands out one transaction per operation.
type Store struct {
	db      *sql.DB
	timeout time.Duration
}

var _ repositories.TxRunner = (*Store)(nil)

// NewStore wraps an open pool.
func NewStore(db *sql.DB, timeout time.Duration) *Store {
	return &Store{db: db, timeout: timeoutOrDefault(timeout)}
}

// WithinTx runs fn inside a transaction bounded by the store timeout.
// The transaction is committed when fn succeeds and rolled back otherwise,
// including when fn panics.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, executor repositories.SQLExecutor) error) (err error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", repositories.ErrDatabaseError, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
			utils.LogDebug("Transaction rolled back", map[string]interface{}{"error": fmt.Sprint(err)})
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit transaction: %v", repositories.ErrDatabaseError, err)
	}
	committed = true
	return nil
}

// Ping checks the pool and records the latency.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	start := time.Now()
	if err := s.db.PingContext(ctx); err != nil {
		return err
	}
	metrics.ObserveDBPing(time.Since(start))
	return nil
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultTimeout
	}
	return d
}

// withTimeout keeps a shorter parent deadline instead of extending it.
func withTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if dl, ok := parent.Deadline(); ok && time.Until(dl) < d {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, d)
}
