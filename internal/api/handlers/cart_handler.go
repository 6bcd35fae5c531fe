package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/pagemark/bookstore/internal/models"
	"github.com/pagemark/bookstore/internal/services"
)

// CartHandler handles HTTP requests for the authenticated user's cart.
type CartHandler struct {
	service services.CartServiceProvider
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service services.CartServiceProvider) *CartHandler {
	return &CartHandler{service: service}
}

// AddItemPayload defines the structure for add-to-cart requests.
type AddItemPayload struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Get returns the user's cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	items, err := h.service.GetCartItems(claims.UserID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("Failed to load cart")
		http.Error(w, "Failed to load cart", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.CartItem{}
	}

	writeJSON(w, http.StatusOK, models.Cart{CartItems: items})
}

// AddItem adds a product to the user's cart.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var payload AddItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}

	if err := h.service.AddItem(claims.UserID, payload.ProductID, payload.Quantity); err != nil {
		log.Error().Err(err).Int64("user_id", claims.UserID).Int64("product_id", payload.ProductID).Msg("Failed to add cart item")
		http.Error(w, "Failed to add item to cart", http.StatusInternalServerError)
		return
	}

	writeMessage(w, http.StatusOK, "Item added to cart")
}

// UpdateItem sets a cart line's quantity.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid cart item id", http.StatusBadRequest)
		return
	}

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.service.UpdateItemQuantity(claims.UserID, itemID, payload.Quantity)
	if err != nil {
		log.Warn().Err(err).Int64("item_id", itemID).Msg("Failed to update cart item")
		http.Error(w, "Failed to update cart item", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// RemoveItem deletes a cart line.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid cart item id", http.StatusBadRequest)
		return
	}

	if err := h.service.RemoveItem(claims.UserID, itemID); err != nil {
		log.Warn().Err(err).Int64("item_id", itemID).Msg("Failed to remove cart item")
		http.Error(w, "Failed to remove cart item", http.StatusNotFound)
		return
	}

	writeMessage(w, http.StatusOK, "Item removed from cart")
}

// Clear empties the user's cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	if err := h.service.ClearCart(claims.UserID); err != nil {
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("Failed to clear cart")
		http.Error(w, "Failed to clear cart", http.StatusInternalServerError)
		return
	}

	writeMessage(w, http.StatusOK, "Cart cleared")
}
