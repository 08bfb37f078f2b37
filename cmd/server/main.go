package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gym_crm_backend/internal/config"
	"gym_crm_backend/internal/database"
	"gym_crm_backend/internal/observability"
	"gym_crm_backend/internal/repositories"
	"gym_crm_backend/internal/router"
	"gym_crm_backend/pkg/utils"

	"github.com/alecthomas/kong"
	"github.com/gin-gonic/gin"
)

var version = "dev"

const shutdownTimeout = 10 * time.Second

var CLI struct {
	Version kong.VersionFlag
	EnvFile string `help:"Dotenv file loaded before reading the environment." default:".env" name:"env-file"`

	Serve   ServeCmd   `cmd:"" help:"Apply migrations and run the HTTP API." default:"1"`
	Migrate MigrateCmd `cmd:"" help:"Apply database migrations and exit."`
}

type appContext struct {
	cfg *config.Config
}

type ServeCmd struct{}

func (ServeCmd) Run(app *appContext) error {
	cfg := app.cfg

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, version)
	if err != nil {
		utils.LogError(err, "Sentry init failed, continuing without error reporting")
	}
	defer flush()

	db, err := openAndMigrate(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	store := database.NewStore(db, cfg.DB.Timeout)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	} else if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := router.New(router.Dependencies{
		Tx:          store,
		Repos:       repositories.NewRepositories(),
		Health:      store.Ping,
		CORSOrigins: cfg.CORSOrigins,
		StaticDir:   cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		utils.LogInfo("Server starting", map[string]interface{}{"addr": srv.Addr, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	utils.LogInfo("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

type MigrateCmd struct{}

func (MigrateCmd) Run(app *appContext) error {
	db, err := openAndMigrate(app.cfg)
	if err != nil {
		return err
	}
	return db.Close()
}

func openAndMigrate(cfg *config.Config) (*sql.DB, error) {
	db, err := database.Open(cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("gymcrm"),
		kong.Description("Gym CRM administrative backend"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	cfg, err := config.Load(CLI.EnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	utils.InitLogger(cfg.LogLevel, cfg.LogFormat)

	if err := ctx.Run(&appContext{cfg: cfg}); err != nil {
		utils.LogError(err, "Command failed")
		os.Exit(1)
	}
}
