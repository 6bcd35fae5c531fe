package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/pagemark/bookstore/internal/models"
)

// ReviewServiceProvider defines the interface for review and rating
// services.
type ReviewServiceProvider interface {
	CreateReview(user models.User, productID int64, text string) (models.Review, error)
	GetProductReviews(productID int64) ([]models.Review, error)
	CreateRating(user models.User, productID int64, value int) (models.Rating, error)
	GetProductRatings(productID int64) ([]models.Rating, error)
}

// ReviewService provides business logic for product reviews and ratings.
type ReviewService struct {
	db *sql.DB
}

// NewReviewService creates a new ReviewService.
func NewReviewService(db *sql.DB) *ReviewService {
	return &ReviewService{db: db}
}

// CreateReview stores a written review for a product.
func (s *ReviewService) CreateReview(user models.User, productID int64, text string) (models.Review, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(
		"INSERT INTO reviews (id, user_id, product_id, review) VALUES (?, ?, ?, ?)",
		id, user.ID, productID, text,
	)
	if err != nil {
		return models.Review{}, err
	}

	var review models.Review
	row := s.db.QueryRow("SELECT id, product_id, review, created_at FROM reviews WHERE id = ?", id)
	if err := row.Scan(&review.ID, &review.ProductID, &review.Review, &review.CreatedAt); err != nil {
		return models.Review{}, err
	}
	review.User = &user
	return review, nil
}

// GetProductReviews lists a product's reviews with their authors embedded.
func (s *ReviewService) GetProductReviews(productID int64) ([]models.Review, error) {
	rows, err := s.db.Query(`
		SELECT r.id, r.product_id, r.review, r.created_at, u.id, u.first_name, u.last_name, u.email, u.role
		FROM reviews r JOIN users u ON u.id = r.user_id
		WHERE r.product_id = ? ORDER BY r.created_at DESC`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var (
			review models.Review
			user   models.User
		)
		err := rows.Scan(&review.ID, &review.ProductID, &review.Review, &review.CreatedAt,
			&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Role)
		if err != nil {
			return nil, err
		}
		review.User = &user
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

// CreateRating stores a star rating for a product.
func (s *ReviewService) CreateRating(user models.User, productID int64, value int) (models.Rating, error) {
	if value < 1 || value > 5 {
		return models.Rating{}, fmt.Errorf("rating must be between 1 and 5")
	}
	id := uuid.New().String()
	_, err := s.db.Exec(
		"INSERT INTO ratings (id, user_id, product_id, rating) VALUES (?, ?, ?, ?)",
		id, user.ID, productID, value,
	)
	if err != nil {
		return models.Rating{}, err
	}

	var rating models.Rating
	row := s.db.QueryRow("SELECT id, product_id, rating, created_at FROM ratings WHERE id = ?", id)
	if err := row.Scan(&rating.ID, &rating.ProductID, &rating.Rating, &rating.CreatedAt); err != nil {
		return models.Rating{}, err
	}
	rating.User = &user
	return rating, nil
}

// GetProductRatings lists a product's ratings.
func (s *ReviewService) GetProductRatings(productID int64) ([]models.Rating, error) {
	rows, err := s.db.Query(`
		SELECT r.id, r.product_id, r.rating, r.created_at, u.id, u.first_name, u.last_name, u.email, u.role
		FROM ratings r JOIN users u ON u.id = r.user_id
		WHERE r.product_id = ? ORDER BY r.created_at DESC`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []models.Rating
	for rows.Next() {
		var (
			rating models.Rating
			user   models.User
		)
		err := rows.Scan(&rating.ID, &rating.ProductID, &rating.Rating, &rating.CreatedAt,
			&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Role)
		if err != nil {
			return nil, err
		}
		rating.User = &user
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}
