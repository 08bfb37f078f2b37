package handlers

import (
	"context"
	"net/http"

	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Ping answers liveness probes without touching the database.
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Healthz reports 503 when check fails.
func Healthz(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			if err := check(c.Request.Context()); err != nil {
				utils.LogError(err, "Healthz: database check failed")
				utils.RespondWithError(c, utils.NewAPIError(http.StatusServiceUnavailable, utils.ErrCodeServiceUnavailable, "Database unavailable.", err.Error()))
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
