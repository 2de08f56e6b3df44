package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ranchers-app/storefront/internal/cart"
	"github.com/ranchers-app/storefront/internal/domain"
)

func withSession(r *http.Request, token string) *http.Request {
	ctx := context.WithValue(r.Context(), "session_token", token)
	return r.WithContext(ctx)
}

func TestGetCart_Unauthorized(t *testing.T) {
	handler := NewCartHandler(cart.NewManager())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/", nil)
	// No session token in context

	handler.GetCart(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected status code %d, got %d", http.StatusUnauthorized, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Code != "unauthorized" {
		t.Errorf("Expected error code 'unauthorized', got '%s'", response.Code)
	}
}

func TestAddItem_Success(t *testing.T) {
	carts := cart.NewManager()
	handler := NewCartHandler(carts)

	req := &CartItemDTO{Name: "Burger", Price: 5.00, Quantity: 2}
	reqBytes, _ := json.Marshal(req)

	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/items", bytes.NewReader(reqBytes)), "tok-1")

	handler.AddItem(recorder, request)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("Expected status code %d, got %d", http.StatusCreated, recorder.Code)
	}

	var response CartResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Total != 10.00 {
		t.Errorf("Expected total 10.00, got %.2f", response.Total)
	}
	if len(response.Items) != 1 {
		t.Errorf("Expected 1 item, got %d", len(response.Items))
	}
}

func TestAddItem_Malformed(t *testing.T) {
	handler := NewCartHandler(cart.NewManager())

	req := &CartItemDTO{Name: "Burger", Price: -5.00}
	reqBytes, _ := json.Marshal(req)

	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/items", bytes.NewReader(reqBytes)), "tok-1")

	handler.AddItem(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Code != "malformed_item" {
		t.Errorf("Expected error code 'malformed_item', got '%s'", response.Code)
	}
}

func TestSetItems_ReplacesContents(t *testing.T) {
	carts := cart.NewManager()
	handler := NewCartHandler(carts)

	store := carts.ForSession("tok-1")
	if err := store.AddItem(domain.CartItem{Name: "Old", Price: 1.00}); err != nil {
		t.Fatal(err)
	}

	req := &SetItemsRequestDTO{Items: []CartItemDTO{
		{Name: "Burger", Price: 5.00, Quantity: 2},
		{Name: "Fries", Price: 2.50, Quantity: 1},
	}}
	reqBytes, _ := json.Marshal(req)

	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("PUT", "/", bytes.NewReader(reqBytes)), "tok-1")

	handler.SetItems(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response CartResponseDTO
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Total != 12.50 {
		t.Errorf("Expected total 12.50, got %.2f", response.Total)
	}
	if len(response.Items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(response.Items))
	}
}

func TestRemoveItem_ViaRouter(t *testing.T) {
	carts := cart.NewManager()
	handler := NewCartHandler(carts)

	store := carts.ForSession("tok-1")
	store.SetItems([]domain.CartItem{
		{Name: "Burger", Price: 5.00, Quantity: 2},
		{Name: "Fries", Price: 2.50, Quantity: 1},
	})

	r := chi.NewRouter()
	r.Delete("/cart/items/{index}", handler.RemoveItem)

	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("DELETE", "/cart/items/0", nil), "tok-1")

	r.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response CartResponseDTO
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Total != 2.50 {
		t.Errorf("Expected total 2.50, got %.2f", response.Total)
	}
}

func TestClearCart(t *testing.T) {
	carts := cart.NewManager()
	handler := NewCartHandler(carts)

	store := carts.ForSession("tok-1")
	store.AddItem(domain.CartItem{Name: "Burger", Price: 5.00})

	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("DELETE", "/", nil), "tok-1")

	handler.ClearCart(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	if store.Total() != 0 {
		t.Errorf("Expected cleared cart, total is %.2f", store.Total())
	}
}
