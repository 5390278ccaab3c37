package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gomartghana/gomart-api/app/helpers"
	"github.com/gomartghana/gomart-api/app/middlewares"
	"github.com/gomartghana/gomart-api/app/services"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

type processPaymentRequest struct {
	OrderID              string `json:"orderId"`
	PaymentMethod        string `json:"paymentMethod"`
	TransactionReference string `json:"transactionReference"`
}

func (h *PaymentHandler) Process(w http.ResponseWriter, r *http.Request) {
	customer, ok := middlewares.CustomerFromContext(r)
	if !ok {
		helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, user not found")
		return
	}

	var req processPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.paymentService.InitiatePayment(r.Context(), services.InitiatePaymentInput{
		OrderID:              req.OrderID,
		PaymentMethod:        req.PaymentMethod,
		TransactionReference: req.TransactionReference,
		CustomerID:           customer.ID,
	})
	if err != nil {
		helpers.RespondError(w, err)
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "Payment initiated successfully", map[string]interface{}{
		"payment": payment,
	})
}

type gatewayCallbackRequest struct {
	TransactionReference string `json:"transactionReference"`
	Status               string `json:"status"`
}

// Callback is the payment gateway's settlement webhook. Replays are safe:
// a terminal payment is acknowledged without being changed.
func (h *PaymentHandler) Callback(w http.ResponseWriter, r *http.Request) {
	var req gatewayCallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.paymentService.ApplyGatewayResult(r.Context(), req.TransactionReference, req.Status)
	if err != nil {
		helpers.RespondError(w, err)
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "Payment status processed", map[string]interface{}{
		"payment": payment,
	})
}
