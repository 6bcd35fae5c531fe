package models

import "time"

// Review is a written customer review for a product.
type Review struct {
	ID        string    `json:"id"`
	ProductID int64     `json:"productId"`
	Review    string    `json:"review"`
	User      *User     `json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Rating is a 1-5 star rating for a product.
type Rating struct {
	ID        string    `json:"id"`
	ProductID int64     `json:"productId"`
	Rating    int       `json:"rating"`
	User      *User     `json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
