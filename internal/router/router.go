package router

import (
	"context"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gym_crm_backend/internal/config"
	"gym_crm_backend/internal/handlers"
	"gym_crm_backend/internal/metrics"
	"gym_crm_backend/internal/repositories"
	"gym_crm_backend/internal/services"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Dependencies is everything the HTTP layer needs from the process root.
type Dependencies struct {
	Tx          repositories.TxRunner
	Repos       repositories.Repositories
	Health      func(ctx context.Context) error
	CORSOrigins []string
	StaticDir   string
}

// New returns an engine with the standard middleware chain and every route registered.
func New(deps Dependencies) *gin.Engine {
	engine := gin.New()
	UseMiddleware(engine, deps.CORSOrigins)
	Setup(engine, deps)
	return engine
}

// UseMiddleware installs recovery, request ids, request logging, metrics and CORS.
func UseMiddleware(engine *gin.Engine, origins []string) {
	if len(origins) == 0 {
		origins = config.DefaultCORSOrigins
	}
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = origins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", utils.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{utils.RequestIDHeader, "Content-Disposition"}
	corsConfig.AllowCredentials = true

	engine.Use(
		gin.Recovery(),
		utils.RequestID(),
		utils.GinLogger(),
		metrics.Middleware(),
		cors.New(corsConfig),
	)
}

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, deps Dependencies) {
	// Initialize Services
	clientService := services.NewClientService(deps.Repos.Clients, deps.Tx)
	trainerService := services.NewTrainerService(deps.Repos.Trainers, deps.Tx)
	groupService := services.NewGroupService(deps.Repos.Groups, deps.Tx)
	periodService := services.NewPeriodService(deps.Repos.Periods, deps.Tx)
	paymentService := services.NewPaymentService(deps.Repos.Payments, deps.Tx)
	freezeService := services.NewFreezeSettingsService(deps.Repos.FreezeSettings, deps.Tx)

	// Initialize Handlers
	clientHandler := handlers.NewClientHandler(clientService)
	trainerHandler := handlers.NewTrainerHandler(trainerService)
	groupHandler := handlers.NewGroupHandler(groupService)
	periodHandler := handlers.NewPeriodHandler(periodService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	freezeHandler := handlers.NewFreezeSettingsHandler(freezeService)
	exportHandler := handlers.NewExportHandler(clientService, periodService, groupService, paymentService, freezeService)

	engine.GET("/ping", handlers.Ping)
	engine.GET("/healthz", handlers.Healthz(deps.Health))
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	root := engine.Group("")
	{
		SetupClientRoutes(root, clientHandler)
		SetupTrainerRoutes(root, trainerHandler)
		SetupGroupRoutes(root, groupHandler)
		SetupPeriodRoutes(root, periodHandler)
		SetupPaymentRoutes(root, paymentHandler)
		SetupFreezeSettingsRoutes(root, freezeHandler)
		SetupExportRoutes(root, exportHandler)
	}

	setupFrontend(engine, deps.StaticDir)
}

// setupFrontend serves the built admin UI when staticDir is set. Unknown GET
// paths fall back to index.html so client-side routing works.
func setupFrontend(engine *gin.Engine, staticDir string) {
	if staticDir == "" {
		engine.NoRoute(notFound)
		return
	}

	engine.Static("/assets", filepath.Join(staticDir, "assets"))
	index := filepath.Join(staticDir, "index.html")

	engine.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			notFound(c)
			return
		}
		rel := strings.TrimPrefix(path.Clean("/"+c.Request.URL.Path), "/")
		if rel != "" {
			file := filepath.Join(staticDir, filepath.FromSlash(rel))
			if info, err := os.Stat(file); err == nil && !info.IsDir() {
				c.File(file)
				return
			}
		}
		c.File(index)
	})
}

func notFound(c *gin.Context) {
	utils.RespondNotFound(c, "Route not found", c.Request.Method+" "+c.Request.URL.Path)
}
