package services

import (
	"database/sql"
	"fmt"

	"github.com/pagemark/bookstore/internal/models"
)

// ProductServiceProvider defines the interface for product services.
type ProductServiceProvider interface {
	GetAllProducts() ([]models.Product, error)
	GetProductByID(id int64) (models.Product, error)
}

// ProductService provides read access to the product catalog.
type ProductService struct {
	db *sql.DB
}

// NewProductService creates a new ProductService.
func NewProductService(db *sql.DB) *ProductService {
	return &ProductService{db: db}
}

const productColumns = "id, title, author, price, COALESCE(discounted_price, 0), COALESCE(image_url, ''), COALESCE(description, ''), COALESCE(category, ''), COALESCE(genre, ''), COALESCE(publisher, ''), COALESCE(language, ''), COALESCE(quantity, 0), COALESCE(average_rating, 0), COALESCE(num_ratings, 0)"

func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Title, &p.Author, &p.Price, &p.DiscountedPrice, &p.ImageURL,
		&p.Description, &p.Category, &p.Genre, &p.Publisher, &p.Language, &p.Quantity,
		&p.AverageRating, &p.NumRatings)
	return p, err
}

// GetAllProducts lists the full catalog.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	rows, err := s.db.Query("SELECT " + productColumns + " FROM products ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetProductByID retrieves a single product.
func (s *ProductService) GetProductByID(id int64) (models.Product, error) {
	row := s.db.QueryRow("SELECT "+productColumns+" FROM products WHERE id = ?", id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Product{}, fmt.Errorf("product with ID %d not found", id)
		}
		return models.Product{}, err
	}
	return p, nil
}
