package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ranchers-app/storefront/internal/account"
	"github.com/ranchers-app/storefront/internal/backend"
	"github.com/ranchers-app/storefront/internal/cart"
	"github.com/ranchers-app/storefront/internal/checkout"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleServiceError maps the typed service failures onto HTTP statuses so
// the client can present an actionable message per kind.
func handleServiceError(w http.ResponseWriter, err error) {
	var httpStatus int
	var code string

	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		httpStatus = http.StatusBadRequest
		code = "empty_cart"
	case errors.Is(err, checkout.ErrNotAuthenticated), errors.Is(err, backend.ErrNoSession):
		httpStatus = http.StatusUnauthorized
		code = "not_authenticated"
	case errors.Is(err, checkout.ErrProfileUnavailable):
		httpStatus = http.StatusBadGateway
		code = "profile_unavailable"
	case errors.Is(err, checkout.ErrSubmissionFailed):
		httpStatus = http.StatusBadGateway
		code = "submission_failed"
	case errors.Is(err, cart.ErrMalformedItem):
		httpStatus = http.StatusBadRequest
		code = "malformed_item"
	case errors.Is(err, account.ErrMissingFields), errors.Is(err, account.ErrBadRating):
		httpStatus = http.StatusBadRequest
		code = "invalid_request"
	case errors.Is(err, backend.ErrNotFound):
		httpStatus = http.StatusNotFound
		code = "not_found"
	case errors.Is(err, backend.ErrRejected):
		httpStatus = http.StatusUnprocessableEntity
		code = "rejected"
	case errors.Is(err, backend.ErrUnavailable):
		httpStatus = http.StatusServiceUnavailable
		code = "service_unavailable"
	default:
		httpStatus = http.StatusInternalServerError
		code = "internal_error"
	}

	respondError(w, httpStatus, code, err.Error())
}
