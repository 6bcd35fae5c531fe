package models

// CartItem is one distinct product line in a user's cart. Price is the unit
// price captured when the line was created; later discount changes on the
// product do not reprice existing lines.
type CartItem struct {
	ID       int64   `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Cart is the wire shape of GET /api/cart/.
type Cart struct {
	CartItems []CartItem `json:"cartItems"`
}
