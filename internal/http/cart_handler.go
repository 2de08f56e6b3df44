package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ranchers-app/storefront/internal/cart"
	"github.com/ranchers-app/storefront/internal/domain"
)

type CartHandler struct {
	carts *cart.Manager
}

func NewCartHandler(carts *cart.Manager) *CartHandler {
	return &CartHandler{carts: carts}
}

type CartItemDTO struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type SetItemsRequestDTO struct {
	Items []CartItemDTO `json:"items"`
}

type CartResponseDTO struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	token := getSessionToken(r.Context())
	if token == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session token")
		return
	}

	snap := h.carts.ForSession(token).Snapshot()
	respondJSON(w, http.StatusOK, CartResponseDTO{Items: snap.Items, Total: snap.Total})
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	token := getSessionToken(r.Context())
	if token == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session token")
		return
	}

	var req CartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	store := h.carts.ForSession(token)
	if err := store.AddItem(domain.CartItem{Name: req.Name, Price: req.Price, Quantity: req.Quantity}); err != nil {
		handleServiceError(w, err)
		return
	}

	snap := store.Snapshot()
	respondJSON(w, http.StatusCreated, CartResponseDTO{Items: snap.Items, Total: snap.Total})
}

func (h *CartHandler) SetItems(w http.ResponseWriter, r *http.Request) {
	token := getSessionToken(r.Context())
	if token == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session token")
		return
	}

	var req SetItemsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	items := make([]domain.CartItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.CartItem{Name: it.Name, Price: it.Price, Quantity: it.Quantity}
	}

	store := h.carts.ForSession(token)
	if err := store.SetItems(items); err != nil {
		handleServiceError(w, err)
		return
	}

	snap := store.Snapshot()
	respondJSON(w, http.StatusOK, CartResponseDTO{Items: snap.Items, Total: snap.Total})
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	token := getSessionToken(r.Context())
	if token == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session token")
		return
	}

	indexStr := chi.URLParam(r, "index")
	index, err := strconv.Atoi(indexStr)
	if err != nil || index < 0 {
		respondError(w, http.StatusBadRequest, "invalid_index", "index must be a non-negative integer")
		return
	}

	store := h.carts.ForSession(token)
	if err := store.RemoveItem(index); err != nil {
		respondError(w, http.StatusNotFound, "not_found", err.Error())
		return
	}

	snap := store.Snapshot()
	respondJSON(w, http.StatusOK, CartResponseDTO{Items: snap.Items, Total: snap.Total})
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	token := getSessionToken(r.Context())
	if token == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session token")
		return
	}

	store := h.carts.ForSession(token)
	store.Clear()

	snap := store.Snapshot()
	respondJSON(w, http.StatusOK, CartResponseDTO{Items: snap.Items, Total: snap.Total})
}
