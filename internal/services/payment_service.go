package services

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/pagemark/bookstore/internal/models"
)

// PaymentServiceProvider defines the interface for payment-method services.
type PaymentServiceProvider interface {
	AddPayment(userID int64, info models.PaymentInformation) error
	GetUserPayments(userID int64) ([]models.PaymentInformation, error)
}

// PaymentService stores masked payment methods per user. Card numbers
// arrive already masked; the full number is never persisted.
type PaymentService struct {
	db *sql.DB
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(db *sql.DB) *PaymentService {
	return &PaymentService{db: db}
}

// AddPayment stores a payment method for a user.
func (s *PaymentService) AddPayment(userID int64, info models.PaymentInformation) error {
	_, err := s.db.Exec(
		"INSERT INTO payment_information (id, user_id, cardholder_name, card_number, expiration_date) VALUES (?, ?, ?, ?, ?)",
		uuid.New().String(), userID, info.CardholderName, info.CardNumber, info.ExpirationDate,
	)
	return err
}

// GetUserPayments lists a user's stored payment methods.
func (s *PaymentService) GetUserPayments(userID int64) ([]models.PaymentInformation, error) {
	rows, err := s.db.Query(
		"SELECT id, cardholder_name, card_number, expiration_date FROM payment_information WHERE user_id = ?",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var methods []models.PaymentInformation
	for rows.Next() {
		var info models.PaymentInformation
		if err := rows.Scan(&info.ID, &info.CardholderName, &info.CardNumber, &info.ExpirationDate); err != nil {
			return nil, err
		}
		methods = append(methods, info)
	}
	return methods, rows.Err()
}
