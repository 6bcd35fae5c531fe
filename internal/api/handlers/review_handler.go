package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/pagemark/bookstore/internal/models"
	"github.com/pagemark/bookstore/internal/services"
)

// ReviewHandler handles HTTP requests for product reviews and ratings.
type ReviewHandler struct {
	reviews services.ReviewServiceProvider
	users   services.UserServiceProvider
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviews services.ReviewServiceProvider, users services.UserServiceProvider) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, users: users}
}

// ReviewPayload defines the structure for review submissions.
type ReviewPayload struct {
	ProductID int64  `json:"productId"`
	Review    string `json:"review"`
}

// RatingPayload defines the structure for rating submissions.
type RatingPayload struct {
	ProductID int64 `json:"productId"`
	Rating    int   `json:"rating"`
}

func (h *ReviewHandler) author(r *http.Request) (models.User, bool) {
	claims, ok := claimsFrom(r)
	if !ok {
		return models.User{}, false
	}
	user, err := h.users.GetUserByID(claims.UserID)
	if err != nil {
		return models.User{}, false
	}
	return user, true
}

// CreateReview stores a written review for a product.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	user, ok := h.author(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var payload ReviewPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(payload.Review) == "" {
		http.Error(w, "Review text is required", http.StatusBadRequest)
		return
	}

	review, err := h.reviews.CreateReview(user, payload.ProductID, payload.Review)
	if err != nil {
		log.Error().Err(err).Int64("product_id", payload.ProductID).Msg("Failed to create review")
		http.Error(w, "Failed to create review", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

// GetProductReviews lists a product's reviews.
func (h *ReviewHandler) GetProductReviews(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	reviews, err := h.reviews.GetProductReviews(productID)
	if err != nil {
		log.Error().Err(err).Int64("product_id", productID).Msg("Failed to list reviews")
		http.Error(w, "Failed to list reviews", http.StatusInternalServerError)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	writeJSON(w, http.StatusOK, reviews)
}

// CreateRating stores a star rating for a product.
func (h *ReviewHandler) CreateRating(w http.ResponseWriter, r *http.Request) {
	user, ok := h.author(r)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var payload RatingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	rating, err := h.reviews.CreateRating(user, payload.ProductID, payload.Rating)
	if err != nil {
		log.Warn().Err(err).Int64("product_id", payload.ProductID).Msg("Failed to create rating")
		http.Error(w, "Failed to create rating: "+err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, rating)
}

// GetProductRatings lists a product's ratings.
func (h *ReviewHandler) GetProductRatings(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	ratings, err := h.reviews.GetProductRatings(productID)
	if err != nil {
		log.Error().Err(err).Int64("product_id", productID).Msg("Failed to list ratings")
		http.Error(w, "Failed to list ratings", http.StatusInternalServerError)
		return
	}
	if ratings == nil {
		ratings = []models.Rating{}
	}
	writeJSON(w, http.StatusOK, ratings)
}
