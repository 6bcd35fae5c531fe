package models

// PaymentInformation is a stored payment method. CardNumber is always the
// masked form; the full number never leaves the process that collected it.
type PaymentInformation struct {
	ID             string `json:"id,omitempty"`
	CardholderName string `json:"cardholderName"`
	CardNumber     string `json:"cardNumber"`
	ExpirationDate string `json:"expirationDate"`
	CVV            string `json:"cvv,omitempty"`
}
