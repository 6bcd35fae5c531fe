package models

import "time"

// RoleCustomer is the role assigned to every self-registered account.
const RoleCustomer = "CUSTOMER"

// User represents an authenticated bookstore account as returned by
// GET /api/users/profile.
type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// MockUser is a locally registered account kept in the durable store under
// the "mockUsers" key. Unlike User it carries the plaintext password, since
// the mock tier has no backend to verify against.
type MockUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// User converts a mock record into the public account shape.
func (m MockUser) User() User {
	return User{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Role:      m.Role,
	}
}

// SignupRequest is the payload for POST /auth/signup.
type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}
