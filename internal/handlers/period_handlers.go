package handlers

import (
	"errors"
	"net/http"

	"gym_crm_backend/internal/services"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PeriodHandler serves subscription periods.
type PeriodHandler struct {
	periodService services.PeriodService
}

func NewPeriodHandler(ps services.PeriodService) *PeriodHandler {
	return &PeriodHandler{periodService: ps}
}

func (h *PeriodHandler) CreatePeriod(c *gin.Context) {
	var req services.CreatePeriodRequest
	if !bindJSON(c, &req, "CreatePeriod") {
		return
	}

	period, err := h.periodService.CreatePeriod(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPeriodValueExists):
			utils.RespondConflict(c, "Period value already exists.", err.Error())
		case errors.Is(err, services.ErrValidation):
			respondValidation(c, err)
		default:
			respondInternal(c, err, "CreatePeriod: Error from periodService.CreatePeriod", "Failed to create period.")
		}
		return
	}
	c.JSON(http.StatusCreated, period)
}

func (h *PeriodHandler) GetPeriods(c *gin.Context) {
	periods, err := h.periodService.GetPeriods(c.Request.Context())
	if err != nil {
		respondInternal(c, err, "GetPeriods: Error from periodService.GetPeriods", "Failed to fetch periods.")
		return
	}
	c.JSON(http.StatusOK, periods)
}

func (h *PeriodHandler) GetPeriodByID(c *gin.Context) {
	periodID, ok := parseIDParam(c, "period")
	if !ok {
		return
	}

	period, err := h.periodService.GetPeriodByID(c.Request.Context(), periodID)
	if err != nil {
		if errors.Is(err, services.ErrPeriodNotFound) {
			utils.RespondNotFound(c, "Period not found", err.Error())
			return
		}
		respondInternal(c, err, "GetPeriodByID: Error from periodService.GetPeriodByID", "Failed to fetch period.")
		return
	}
	c.JSON(http.StatusOK, period)
}

func (h *PeriodHandler) UpdatePeriod(c *gin.Context) {
	periodID, ok := parseIDParam(c, "period")
	if !ok {
		return
	}
	var req services.UpdatePeriodRequest
	if !bindJSON(c, &req, "UpdatePeriod") {
		return
	}

	period, err := h.periodService.UpdatePeriod(c.Request.Context(), periodID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPeriodNotFound):
			utils.RespondNotFound(c, "Period not found", err.Error())
		case errors.Is(err, services.ErrPeriodValueExists):
			utils.RespondConflict(c, "Period value already exists.", err.Error())
		case errors.Is(err, services.ErrValidation):
			respondValidation(c, err)
		default:
			respondInternal(c, err, "UpdatePeriod: Error from periodService.UpdatePeriod", "Failed to update period.")
		}
		return
	}
	c.JSON(http.StatusOK, period)
}

func (h *PeriodHandler) DeletePeriod(c *gin.Context) {
	periodID, ok := parseIDParam(c, "period")
	if !ok {
		return
	}

	if err := h.periodService.DeletePeriod(c.Request.Context(), periodID); err != nil {
		if errors.Is(err, services.ErrPeriodNotFound) {
			utils.RespondNotFound(c, "Period not found", err.Error())
			return
		}
		respondInternal(c, err, "DeletePeriod: Error from periodService.DeletePeriod", "Failed to delete period.")
		return
	}
	respondDeleted(c, "Period deleted successfully")
}
