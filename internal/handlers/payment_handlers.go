package handlers

import (
	"errors"
	"net/http"

	"gym_crm_backend/internal/services"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves payment methods.
type PaymentHandler struct {
	paymentService services.PaymentService
}

func NewPaymentHandler(ps services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: ps}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req services.CreatePaymentRequest
	if !bindJSON(c, &req, "CreatePayment") {
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPaymentValueExists):
			utils.RespondConflict(c, "Payment method value already exists.", err.Error())
		case errors.Is(err, services.ErrValidation):
			respondValidation(c, err)
		default:
			respondInternal(c, err, "CreatePayment: Error from paymentService.CreatePayment", "Failed to create payment method.")
		}
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) GetPayments(c *gin.Context) {
	payments, err := h.paymentService.GetPayments(c.Request.Context())
	if err != nil {
		respondInternal(c, err, "GetPayments: Error from paymentService.GetPayments", "Failed to fetch payment methods.")
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	paymentID, ok := parseIDParam(c, "payment method")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), paymentID)
	if err != nil {
		if errors.Is(err, services.ErrPaymentNotFound) {
			utils.RespondNotFound(c, "Payment method not found", err.Error())
			return
		}
		respondInternal(c, err, "GetPaymentByID: Error from paymentService.GetPaymentByID", "Failed to fetch payment method.")
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	paymentID, ok := parseIDParam(c, "payment method")
	if !ok {
		return
	}
	var req services.UpdatePaymentRequest
	if !bindJSON(c, &req, "UpdatePayment") {
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), paymentID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPaymentNotFound):
			utils.RespondNotFound(c, "Payment method not found", err.Error())
		case errors.Is(err, services.ErrPaymentValueExists):
			utils.RespondConflict(c, "Payment method value already exists.", err.Error())
		case errors.Is(err, services.ErrValidation):
			respondValidation(c, err)
		default:
			respondInternal(c, err, "UpdatePayment: Error from paymentService.UpdatePayment", "Failed to update payment method.")
		}
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	paymentID, ok := parseIDParam(c, "payment method")
	if !ok {
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), paymentID); err != nil {
		if errors.Is(err, services.ErrPaymentNotFound) {
			utils.RespondNotFound(c, "Payment method not found", err.Error())
			return
		}
		respondInternal(c, err, "DeletePayment: Error from paymentService.DeletePayment", "Failed to delete payment method.")
		return
	}
	respondDeleted(c, "Payment method deleted successfully")
}
