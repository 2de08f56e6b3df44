package http

import (
	"context"
	"net/http"
	"time"

	"github.com/ranchers-app/storefront/internal/checkout"
)

type CheckoutHandler struct {
	service *checkout.Service
	timeout time.Duration
}

func NewCheckoutHandler(service *checkout.Service, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		timeout: timeout,
	}
}

type CheckoutResponseDTO struct {
	Total   float64 `json:"total"`
	Message string  `json:"message"`
}

// POST /api/v1/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	token := getSessionToken(r.Context())
	if token == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session token")
		return
	}

	confirmation, err := h.service.Checkout(ctx, token)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, CheckoutResponseDTO{
		Total:   confirmation.Total,
		Message: confirmation.Message,
	})
}
