package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ranchers-app/storefront/internal/account"
	"github.com/ranchers-app/storefront/internal/backend"
	"github.com/ranchers-app/storefront/internal/cart"
)

type AuthHandler struct {
	api     backend.DataAPI
	account *account.Service
	carts   *cart.Manager
	timeout time.Duration
}

func NewAuthHandler(api backend.DataAPI, acct *account.Service, carts *cart.Manager, timeout time.Duration) *AuthHandler {
	return &AuthHandler{
		api:     api,
		account: acct,
		carts:   carts,
		timeout: timeout,
	}
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponseDTO struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
}

type ChangePasswordRequestDTO struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "all fields are mandatory")
		return
	}

	session, err := h.api.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, LoginResponseDTO{
		AccessToken: session.AccessToken,
		UserID:      session.User.ID,
		Email:       session.User.Email,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	token := getSessionToken(r.Context())
	if token == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session token")
		return
	}

	if err := h.api.SignOut(ctx, token); err != nil {
		handleServiceError(w, err)
		return
	}

	// The cart is session state; it dies with the session.
	h.carts.Drop(token)

	respondJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	token := getSessionToken(r.Context())
	if token == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session token")
		return
	}

	var req ChangePasswordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		respondError(w, http.StatusBadRequest, "password_mismatch", "new passwords do not match")
		return
	}

	if err := h.account.ChangePassword(ctx, token, req.CurrentPassword, req.NewPassword); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "password changed"})
}
