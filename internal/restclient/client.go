// Package restclient talks to the bookstore REST backend. It makes exactly
// one attempt per call; callers own the fallback policy.
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pagemark/bookstore/internal/models"
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Body)
}

// Client is a bookstore backend client. When a bearer token is set it is
// attached to every outgoing request. Not safe for concurrent token updates;
// the session manager is the only writer.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New creates a client for the backend at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken attaches a bearer token to subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

// ClearToken detaches the bearer token.
func (c *Client) ClearToken() { c.token = "" }

// Token returns the currently attached bearer token.
func (c *Client) Token() string { return c.token }

func (c *Client) do(ctx context.Context, method, path string, body, into any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Body: string(bytes.TrimSpace(raw))}
	}
	if into != nil {
		return json.NewDecoder(resp.Body).Decode(into)
	}
	return nil
}

type jwtResponse struct {
	JWT string `json:"jwt"`
}

// SignIn authenticates with email and password and returns the issued token.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}
	var res jwtResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signin", payload, &res); err != nil {
		return "", err
	}
	return res.JWT, nil
}

// SignUp registers a new account and returns the issued token.
func (c *Client) SignUp(ctx context.Context, req models.SignupRequest) (string, error) {
	var res jwtResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", req, &res); err != nil {
		return "", err
	}
	return res.JWT, nil
}

// Profile fetches the account owning the attached token.
func (c *Client) Profile(ctx context.Context) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodGet, "/api/users/profile", nil, &user)
	return user, err
}

// Cart fetches the authenticated user's cart.
func (c *Client) Cart(ctx context.Context) ([]models.CartItem, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodGet, "/api/cart/", nil, &cart); err != nil {
		return nil, err
	}
	return cart.CartItems, nil
}

// AddCartItem adds quantity units of a product to the cart.
func (c *Client) AddCartItem(ctx context.Context, productID int64, quantity int) error {
	payload := map[string]any{"productId": productID, "quantity": quantity}
	return c.do(ctx, http.MethodPut, "/api/cart/add", payload, nil)
}

// RemoveCartItem deletes a cart line by its item id.
func (c *Client) RemoveCartItem(ctx context.Context, itemID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cart/cartItems/%d", itemID), nil, nil)
}

// UpdateCartItem sets the quantity of an existing cart line.
func (c *Client) UpdateCartItem(ctx context.Context, itemID int64, quantity int) error {
	payload := map[string]any{"quantity": quantity}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/cart/cartItems/%d", itemID), payload, nil)
}

// ClearCart removes every line from the cart.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/cart/clear", nil, nil)
}

// ProductReviews lists the reviews for a product.
func (c *Client) ProductReviews(ctx context.Context, productID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/reviews/product/%d", productID), nil, &reviews)
	return reviews, err
}

// CreateReview submits a written review for a product.
func (c *Client) CreateReview(ctx context.Context, productID int64, text string) (models.Review, error) {
	payload := map[string]any{"productId": productID, "review": text}
	var review models.Review
	err := c.do(ctx, http.MethodPost, "/api/reviews/create", payload, &review)
	return review, err
}

// ProductRatings lists the ratings for a product.
func (c *Client) ProductRatings(ctx context.Context, productID int64) ([]models.Rating, error) {
	var ratings []models.Rating
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/ratings/product/%d", productID), nil, &ratings)
	return ratings, err
}

// CreateRating submits a star rating for a product.
func (c *Client) CreateRating(ctx context.Context, productID int64, value int) (models.Rating, error) {
	payload := map[string]any{"productId": productID, "rating": value}
	var rating models.Rating
	err := c.do(ctx, http.MethodPost, "/api/ratings/create", payload, &rating)
	return rating, err
}

// PaymentMethods lists the authenticated user's stored payment methods.
func (c *Client) PaymentMethods(ctx context.Context) ([]models.PaymentInformation, error) {
	var methods []models.PaymentInformation
	err := c.do(ctx, http.MethodGet, "/api/payments/user", nil, &methods)
	return methods, err
}

// AddPaymentMethod stores a payment method for the authenticated user.
func (c *Client) AddPaymentMethod(ctx context.Context, info models.PaymentInformation) error {
	return c.do(ctx, http.MethodPost, "/api/payments/add", info, nil)
}
