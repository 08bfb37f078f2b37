package handlers

import (
	"net/http"

	"gym_crm_backend/internal/observability"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads the :id path parameter. On failure it writes a 400 and returns false.
func parseIDParam(c *gin.Context, resource string) (int64, bool) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "invalid "+resource+" id: "+err.Error())
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body into req. On failure it writes a 400 and returns false.
func bindJSON(c *gin.Context, req interface{}, op string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.LogWarn(err, op+": Failed to bind JSON")
		utils.RespondValidationFailed(c, "invalid request payload: "+err.Error())
		return false
	}
	return true
}

func respondValidation(c *gin.Context, err error) {
	utils.LogWarn(err, "Rejected invalid field values")
	utils.RespondValidationFailed(c, err.Error())
}

// respondInternal hides err from the caller, logs it and reports it to Sentry.
func respondInternal(c *gin.Context, err error, op, message string) {
	utils.LogError(err, op)
	observability.CaptureErr(err)
	utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, message, "Internal error"))
}

func respondDeleted(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": message})
}
