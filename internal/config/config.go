package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"gym_crm_backend/internal/database"
	"gym_crm_backend/pkg/utils"

	"github.com/joho/godotenv"
)

// DefaultCORSOrigins are the dev-server origins of the admin UI.
var DefaultCORSOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"http://127.0.0.1:5173",
	"http://127.0.0.1:5174",
}

type Config struct {
	Port        string
	DB          database.Config
	CORSOrigins []string
	StaticDir   string
	LogLevel    string
	LogFormat   string
	Env         string // dev|prod
	SentryDSN   string
	GinMode     string
}

// Load reads envFile (when it exists) into the environment and builds the
// Config. Variables already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	maxOpen, err := intEnv("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return nil, err
	}
	timeout, err := durationEnv("DB_TIMEOUT", database.DefaultTimeout)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port: utils.Getenv("PORT", "8000"),
		DB: database.Config{
			URL:          utils.Getenv("DATABASE_URL", ""),
			Host:         utils.Getenv("DB_HOST", "localhost"),
			Port:         utils.Getenv("DB_PORT", "5432"),
			User:         utils.Getenv("DB_USER", "gym_crm"),
			Password:     utils.Getenv("DB_PASSWORD", "gym_crm"),
			DBName:       utils.Getenv("DB_NAME", "gym_crm"),
			SSLMode:      utils.Getenv("DB_SSLMODE", "disable"),
			MaxOpenConns: maxOpen,
			Timeout:      timeout,
		},
		CORSOrigins: utils.GetenvList("CORS_ALLOWED_ORIGINS", DefaultCORSOrigins),
		StaticDir:   utils.Getenv("STATIC_DIR", ""),
		LogLevel:    utils.Getenv("LOG_LEVEL", "info"),
		LogFormat:   utils.Getenv("LOG_FORMAT", "console"),
		Env:         utils.Getenv("APP_ENV", "dev"),
		SentryDSN:   utils.Getenv("SENTRY_DSN", ""),
		GinMode:     utils.Getenv("GIN_MODE", ""),
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func intEnv(key string, def int) (int, error) {
	raw := utils.Getenv(key, "")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: invalid integer %q", key, raw)
	}
	return n, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := utils.Getenv(key, "")
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
