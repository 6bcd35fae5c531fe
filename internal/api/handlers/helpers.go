package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pagemark/bookstore/internal/auth"
)

// APIResponse is the generic acknowledgment body for mutations that return
// no resource.
type APIResponse struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APIResponse{Message: message, Status: true})
}

// claimsFrom extracts the authenticated claims placed by the JWT middleware.
func claimsFrom(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(auth.UserClaimsKey).(*auth.Claims)
	return claims, ok
}
