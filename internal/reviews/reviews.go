// Package reviews submits and lists product reviews and star ratings.
// Validation failures abort before any network call.
package reviews

import (
	"context"
	"errors"
	"strings"

	"github.com/pagemark/bookstore/internal/models"
	"github.com/pagemark/bookstore/internal/restclient"
)

// ErrEmptyReview rejects blank review text.
var ErrEmptyReview = errors.New("please enter a review")

// ErrNoRating rejects ratings outside 1 through 5 stars.
var ErrNoRating = errors.New("please select a rating")

// Service submits and fetches reviews and ratings through the backend.
type Service struct {
	api *restclient.Client
}

// NewService creates a review service.
func NewService(api *restclient.Client) *Service {
	return &Service{api: api}
}

// ProductReviews lists the written reviews for a product.
func (s *Service) ProductReviews(ctx context.Context, productID int64) ([]models.Review, error) {
	return s.api.ProductReviews(ctx, productID)
}

// ProductRatings lists the star ratings for a product.
func (s *Service) ProductRatings(ctx context.Context, productID int64) ([]models.Rating, error) {
	return s.api.ProductRatings(ctx, productID)
}

// SubmitReview validates and submits a written review.
func (s *Service) SubmitReview(ctx context.Context, productID int64, text string) (models.Review, error) {
	if strings.TrimSpace(text) == "" {
		return models.Review{}, ErrEmptyReview
	}
	return s.api.CreateReview(ctx, productID, text)
}

// SubmitRating validates and submits a 1-5 star rating.
func (s *Service) SubmitRating(ctx context.Context, productID int64, value int) (models.Rating, error) {
	if value < 1 || value > 5 {
		return models.Rating{}, ErrNoRating
	}
	return s.api.CreateRating(ctx, productID, value)
}

// AverageRating computes the mean of the given ratings, zero when empty.
func AverageRating(ratings []models.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum int
	for _, r := range ratings {
		sum += r.Rating
	}
	return float64(sum) / float64(len(ratings))
}
