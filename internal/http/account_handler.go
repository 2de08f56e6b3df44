package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ranchers-app/storefront/internal/account"
)

type AccountHandler struct {
	account *account.Service
	timeout time.Duration
}

func NewAccountHandler(acct *account.Service, timeout time.Duration) *AccountHandler {
	return &AccountHandler{
		account: acct,
		timeout: timeout,
	}
}

type FeedbackRequestDTO struct {
	Message  string `json:"message"`
	Category string `json:"category"`
	Rating   int    `json:"rating"`
}

type ContactRequestDTO struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

func (h *AccountHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	token := getSessionToken(r.Context())
	if token == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session token")
		return
	}

	profile, err := h.account.Profile(ctx, token)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

func (h *AccountHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	token := getSessionToken(r.Context())
	if token == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session token")
		return
	}

	var req FeedbackRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.account.SubmitFeedback(ctx, token, req.Message, req.Category, req.Rating); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"status": "feedback recorded"})
}

func (h *AccountHandler) SubmitQuery(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	token := getSessionToken(r.Context())
	if token == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session token")
		return
	}

	var req ContactRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.account.SubmitQuery(ctx, token, req.FullName, req.Email, req.Phone, req.Message); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"status": "query recorded"})
}

func (h *AccountHandler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	token := getSessionToken(r.Context())
	if token == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session token")
		return
	}

	orders, err := h.account.OrderHistory(ctx, token)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}
