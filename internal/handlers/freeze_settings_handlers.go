package handlers

import (
	"errors"
	"net/http"

	"gym_crm_backend/internal/services"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// FreezeSettingsHandler serves the subscription freeze rules.
type FreezeSettingsHandler struct {
	settingsService services.FreezeSettingsService
}

func NewFreezeSettingsHandler(fs services.FreezeSettingsService) *FreezeSettingsHandler {
	return &FreezeSettingsHandler{settingsService: fs}
}

func (h *FreezeSettingsHandler) CreateFreezeSettings(c *gin.Context) {
	var req services.CreateFreezeSettingsRequest
	if !bindJSON(c, &req, "CreateFreezeSettings") {
		return
	}

	settings, err := h.settingsService.CreateFreezeSettings(c.Request.Context(), req)
	if err != nil {
		respondInternal(c, err, "CreateFreezeSettings: Error from settingsService.CreateFreezeSettings", "Failed to create freeze settings.")
		return
	}
	c.JSON(http.StatusCreated, settings)
}

func (h *FreezeSettingsHandler) GetFreezeSettings(c *gin.Context) {
	all, err := h.settingsService.GetFreezeSettings(c.Request.Context())
	if err != nil {
		respondInternal(c, err, "GetFreezeSettings: Error from settingsService.GetFreezeSettings", "Failed to fetch freeze settings.")
		return
	}
	c.JSON(http.StatusOK, all)
}

func (h *FreezeSettingsHandler) GetFreezeSettingsByID(c *gin.Context) {
	id, ok := parseIDParam(c, "freeze settings")
	if !ok {
		return
	}

	settings, err := h.settingsService.GetFreezeSettingsByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrFreezeSettingsNotFound) {
			utils.RespondNotFound(c, "Freeze settings not found", err.Error())
			return
		}
		respondInternal(c, err, "GetFreezeSettingsByID: Error from settingsService.GetFreezeSettingsByID", "Failed to fetch freeze settings.")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *FreezeSettingsHandler) UpdateFreezeSettings(c *gin.Context) {
	id, ok := parseIDParam(c, "freeze settings")
	if !ok {
		return
	}
	var req services.UpdateFreezeSettingsRequest
	if !bindJSON(c, &req, "UpdateFreezeSettings") {
		return
	}

	settings, err := h.settingsService.UpdateFreezeSettings(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFreezeSettingsNotFound):
			utils.RespondNotFound(c, "Freeze settings not found", err.Error())
		case errors.Is(err, services.ErrValidation):
			respondValidation(c, err)
		default:
			respondInternal(c, err, "UpdateFreezeSettings: Error from settingsService.UpdateFreezeSettings", "Failed to update freeze settings.")
		}
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *FreezeSettingsHandler) DeleteFreezeSettings(c *gin.Context) {
	id, ok := parseIDParam(c, "freeze settings")
	if !ok {
		return
	}

	if err := h.settingsService.DeleteFreezeSettings(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrFreezeSettingsNotFound) {
			utils.RespondNotFound(c, "Freeze settings not found", err.Error())
			return
		}
		respondInternal(c, err, "DeleteFreezeSettings: Error from settingsService.DeleteFreezeSettings", "Failed to delete freeze settings.")
		return
	}
	respondDeleted(c, "Freeze settings deleted successfully")
}
