package services

import (
	"database/sql"
	"fmt"

	"github.com/pagemark/bookstore/internal/models"
)

// CartServiceProvider defines the interface for cart services.
type CartServiceProvider interface {
	GetCartItems(userID int64) ([]models.CartItem, error)
	AddItem(userID, productID int64, quantity int) error
	UpdateItemQuantity(userID, itemID int64, quantity int) (models.CartItem, error)
	RemoveItem(userID, itemID int64) error
	ClearCart(userID int64) error
}

// CartService provides business logic for per-user carts. A user has at
// most one cart line per product; adding an existing product increments its
// quantity.
type CartService struct {
	db       *sql.DB
	products ProductServiceProvider
}

// NewCartService creates a new CartService.
func NewCartService(db *sql.DB, products ProductServiceProvider) *CartService {
	return &CartService{db: db, products: products}
}

// GetCartItems lists a user's cart lines with their products embedded.
func (s *CartService) GetCartItems(userID int64) ([]models.CartItem, error) {
	rows, err := s.db.Query(`
		SELECT ci.id, ci.quantity, ci.price, `+prefixedProductColumns("p")+`
		FROM cart_items ci JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = ? ORDER BY ci.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var item models.CartItem
		p := &item.Product
		err := rows.Scan(&item.ID, &item.Quantity, &item.Price,
			&p.ID, &p.Title, &p.Author, &p.Price, &p.DiscountedPrice, &p.ImageURL,
			&p.Description, &p.Category, &p.Genre, &p.Publisher, &p.Language,
			&p.Quantity, &p.AverageRating, &p.NumRatings)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// AddItem adds quantity units of a product to the user's cart, merging into
// an existing line when present. New lines capture the product's effective
// unit price.
func (s *CartService) AddItem(userID, productID int64, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	product, err := s.products.GetProductByID(productID)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO cart_items (user_id, product_id, quantity, price)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, product_id) DO UPDATE SET quantity = quantity + excluded.quantity`,
		userID, productID, quantity, product.EffectivePrice(),
	)
	return err
}

// UpdateItemQuantity sets the quantity of one of the user's cart lines.
func (s *CartService) UpdateItemQuantity(userID, itemID int64, quantity int) (models.CartItem, error) {
	if quantity < 1 {
		return models.CartItem{}, fmt.Errorf("quantity must be at least 1")
	}
	res, err := s.db.Exec("UPDATE cart_items SET quantity = ? WHERE id = ? AND user_id = ?", quantity, itemID, userID)
	if err != nil {
		return models.CartItem{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.CartItem{}, err
	}
	if affected == 0 {
		return models.CartItem{}, fmt.Errorf("cart item %d not found", itemID)
	}

	items, err := s.GetCartItems(userID)
	if err != nil {
		return models.CartItem{}, err
	}
	for _, item := range items {
		if item.ID == itemID {
			return item, nil
		}
	}
	return models.CartItem{}, fmt.Errorf("cart item %d not found", itemID)
}

// RemoveItem deletes one of the user's cart lines.
func (s *CartService) RemoveItem(userID, itemID int64) error {
	res, err := s.db.Exec("DELETE FROM cart_items WHERE id = ? AND user_id = ?", itemID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("cart item %d not found", itemID)
	}
	return nil
}

// ClearCart removes every line from the user's cart.
func (s *CartService) ClearCart(userID int64) error {
	_, err := s.db.Exec("DELETE FROM cart_items WHERE user_id = ?", userID)
	return err
}

func prefixedProductColumns(alias string) string {
	return alias + ".id, " + alias + ".title, " + alias + ".author, " + alias + ".price, " +
		"COALESCE(" + alias + ".discounted_price, 0), COALESCE(" + alias + ".image_url, ''), " +
		"COALESCE(" + alias + ".description, ''), COALESCE(" + alias + ".category, ''), " +
		"COALESCE(" + alias + ".genre, ''), COALESCE(" + alias + ".publisher, ''), " +
		"COALESCE(" + alias + ".language, ''), COALESCE(" + alias + ".quantity, 0), " +
		"COALESCE(" + alias + ".average_rating, 0), COALESCE(" + alias + ".num_ratings, 0)"
}
