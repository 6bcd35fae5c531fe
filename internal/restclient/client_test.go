package restclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemark/bookstore/internal/models"
)

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.Cart{})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Cart(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)

	c.SetToken("tok-123")
	_, err = c.Cart(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)

	c.ClearToken()
	_, err = c.Cart(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.SignIn(context.Background(), "a@b.c", "nope")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Contains(t, apiErr.Body, "Invalid credentials")
}

func TestSignInDecodesJWT(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/signin", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "test@example.com", payload["email"])

		json.NewEncoder(w).Encode(map[string]string{"jwt": "issued-token"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	token, err := c.SignIn(context.Background(), "test@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
}

func TestCartDecodesItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Cart{CartItems: []models.CartItem{
			{ID: 7, Quantity: 2, Price: 719, Product: models.Product{ID: 9, Title: "Watchmen"}},
		}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	items, err := c.Cart(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(7), items[0].ID)
	assert.Equal(t, "Watchmen", items[0].Product.Title)
}

func TestUnreachableBackendFails(t *testing.T) {
	c := New("http://127.0.0.1:1")
	_, err := c.Cart(context.Background())
	assert.Error(t, err)
}
