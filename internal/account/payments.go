// Package account manages the profile's stored payment methods. Card
// numbers are masked before they leave the process; only the last four
// digits survive.
package account

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pagemark/bookstore/internal/models"
	"github.com/pagemark/bookstore/internal/restclient"
)

// ErrMissingCardFields rejects a payment method with any required field
// blank.
var ErrMissingCardFields = errors.New("cardholder name, card number, expiration date and CVV are required")

// Service manages payment methods through the backend.
type Service struct {
	api *restclient.Client
}

// NewService creates a payment-method service.
func NewService(api *restclient.Client) *Service {
	return &Service{api: api}
}

// PaymentMethods lists the stored payment methods. When the backend is
// unreachable it returns the demo card the profile page shows offline.
func (s *Service) PaymentMethods(ctx context.Context) ([]models.PaymentInformation, error) {
	methods, err := s.api.PaymentMethods(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Backend payment methods failed, using demo card")
		return []models.PaymentInformation{
			{
				ID:             "1",
				CardholderName: "John Doe",
				CardNumber:     "**** **** **** 1234",
				ExpirationDate: "12/25",
			},
		}, nil
	}
	return methods, nil
}

// AddPaymentMethod validates, masks and stores a payment method.
func (s *Service) AddPaymentMethod(ctx context.Context, info models.PaymentInformation) error {
	if strings.TrimSpace(info.CardholderName) == "" ||
		strings.TrimSpace(info.CardNumber) == "" ||
		strings.TrimSpace(info.ExpirationDate) == "" ||
		strings.TrimSpace(info.CVV) == "" {
		return ErrMissingCardFields
	}

	info.CardNumber = MaskCardNumber(info.CardNumber)
	info.CVV = ""
	return s.api.AddPaymentMethod(ctx, info)
}

// FormatCardNumber strips non-digits and regroups into blocks of four, up
// to sixteen digits.
func FormatCardNumber(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	v := digits.String()
	if len(v) > 16 {
		v = v[:16]
	}

	var parts []string
	for i := 0; i < len(v); i += 4 {
		end := i + 4
		if end > len(v) {
			end = len(v)
		}
		parts = append(parts, v[i:end])
	}
	return strings.Join(parts, " ")
}

// MaskCardNumber keeps only the last four digits visible.
func MaskCardNumber(value string) string {
	trimmed := strings.ReplaceAll(value, " ", "")
	if len(trimmed) <= 4 {
		return "**** **** **** " + trimmed
	}
	return "**** **** **** " + trimmed[len(trimmed)-4:]
}
