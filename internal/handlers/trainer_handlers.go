package handlers

import (
	"errors"
	"net/http"

	"gym_crm_backend/internal/services"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// TrainerHandler holds the trainer service.
type TrainerHandler struct {
	trainerService services.TrainerService
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(ts services.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: ts}
}

// CreateTrainer handles the creation of a new trainer.
func (h *TrainerHandler) CreateTrainer(c *gin.Context) {
	var req services.CreateTrainerRequest
	if !bindJSON(c, &req, "CreateTrainer") {
		return
	}

	trainer, err := h.trainerService.CreateTrainer(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			respondValidation(c, err)
			return
		}
		respondInternal(c, err, "CreateTrainer: Error from trainerService.CreateTrainer", "Failed to create trainer.")
		return
	}
	c.JSON(http.StatusCreated, trainer)
}

// GetTrainers returns every trainer.
func (h *TrainerHandler) GetTrainers(c *gin.Context) {
	trainers, err := h.trainerService.GetTrainers(c.Request.Context())
	if err != nil {
		respondInternal(c, err, "GetTrainers: Error from trainerService.GetTrainers", "Failed to fetch trainers.")
		return
	}
	c.JSON(http.StatusOK, trainers)
}

// GetTrainerByID handles fetching a single trainer by ID.
func (h *TrainerHandler) GetTrainerByID(c *gin.Context) {
	trainerID, ok := parseIDParam(c, "trainer")
	if !ok {
		return
	}

	trainer, err := h.trainerService.GetTrainerByID(c.Request.Context(), trainerID)
	if err != nil {
		if errors.Is(err, services.ErrTrainerNotFound) {
			utils.RespondNotFound(c, "Trainer not found", err.Error())
			return
		}
		respondInternal(c, err, "GetTrainerByID: Error from trainerService.GetTrainerByID", "Failed to fetch trainer.")
		return
	}
	c.JSON(http.StatusOK, trainer)
}

// UpdateTrainer applies the fields present in the body to a trainer.
func (h *TrainerHandler) UpdateTrainer(c *gin.Context) {
	trainerID, ok := parseIDParam(c, "trainer")
	if !ok {
		return
	}
	var req services.UpdateTrainerRequest
	if !bindJSON(c, &req, "UpdateTrainer") {
		return
	}

	trainer, err := h.trainerService.UpdateTrainer(c.Request.Context(), trainerID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTrainerNotFound):
			utils.RespondNotFound(c, "Trainer not found", err.Error())
		case errors.Is(err, services.ErrValidation):
			respondValidation(c, err)
		default:
			respondInternal(c, err, "UpdateTrainer: Error from trainerService.UpdateTrainer", "Failed to update trainer.")
		}
		return
	}
	c.JSON(http.StatusOK, trainer)
}

// DeleteTrainer handles deleting a trainer.
func (h *TrainerHandler) DeleteTrainer(c *gin.Context) {
	trainerID, ok := parseIDParam(c, "trainer")
	if !ok {
		return
	}

	if err := h.trainerService.DeleteTrainer(c.Request.Context(), trainerID); err != nil {
		if errors.Is(err, services.ErrTrainerNotFound) {
			utils.RespondNotFound(c, "Trainer not found", err.Error())
			return
		}
		respondInternal(c, err, "DeleteTrainer: Error from trainerService.DeleteTrainer", "Failed to delete trainer.")
		return
	}
	respondDeleted(c, "Trainer deleted successfully")
}
