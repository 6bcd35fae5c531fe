package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/pagemark/bookstore/internal/models"
	"github.com/pagemark/bookstore/internal/services"
)

// PaymentHandler handles HTTP requests for stored payment methods.
type PaymentHandler struct {
	service services.PaymentServiceProvider
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service services.PaymentServiceProvider) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// Add stores a payment method for the authenticated user.
func (h *PaymentHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var payload models.PaymentInformation
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if payload.CardholderName == "" || payload.CardNumber == "" || payload.ExpirationDate == "" {
		http.Error(w, "Missing required card fields", http.StatusBadRequest)
		return
	}

	if err := h.service.AddPayment(claims.UserID, payload); err != nil {
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("Failed to add payment method")
		http.Error(w, "Failed to add payment method", http.StatusInternalServerError)
		return
	}

	writeMessage(w, http.StatusOK, "Payment information added successfully")
}

// GetUserPayments lists the authenticated user's stored payment methods.
func (h *PaymentHandler) GetUserPayments(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	methods, err := h.service.GetUserPayments(claims.UserID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("Failed to list payment methods")
		http.Error(w, "Failed to list payment methods", http.StatusInternalServerError)
		return
	}
	if methods == nil {
		methods = []models.PaymentInformation{}
	}
	writeJSON(w, http.StatusOK, methods)
}
