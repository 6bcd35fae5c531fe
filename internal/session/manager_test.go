package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemark/bookstore/internal/models"
	"github.com/pagemark/bookstore/internal/restclient"
	"github.com/pagemark/bookstore/internal/source"
	"github.com/pagemark/bookstore/internal/store"
)

// offlineManager points the client at a dead address so every remote call
// fails and the mock tier answers.
func offlineManager(st store.Store) *Manager {
	return NewManager(restclient.New("http://127.0.0.1:1"), st)
}

func TestDemoLoginOffline(t *testing.T) {
	st := store.NewMemory()
	m := offlineManager(st)

	src, err := m.Login(context.Background(), DemoEmail, DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, source.Local, src)

	assert.True(t, m.IsAuthenticated())
	require.NotNil(t, m.User())
	assert.Equal(t, DemoEmail, m.User().Email)
	assert.Equal(t, int64(1), m.User().ID)
	assert.True(t, strings.HasPrefix(m.Token(), MockTokenPrefix))

	var persisted string
	found, err := st.Get(TokenKey, &persisted)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, m.Token(), persisted)
}

func TestLoginOfflineRejectsUnknownCredentials(t *testing.T) {
	m := offlineManager(store.NewMemory())

	src, err := m.Login(context.Background(), "nobody@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, source.None, src)
	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, m.User())
}

func TestSignupOfflineThenLogin(t *testing.T) {
	st := store.NewMemory()
	m := offlineManager(st)

	src, err := m.Signup(context.Background(), models.SignupRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "enchantress",
	})
	require.NoError(t, err)
	assert.Equal(t, source.Local, src)
	require.NotNil(t, m.User())
	assert.Equal(t, "ada@example.com", m.User().Email)
	assert.Equal(t, models.RoleCustomer, m.User().Role)

	m.Logout()
	assert.False(t, m.IsAuthenticated())

	src, err = m.Login(context.Background(), "ada@example.com", "enchantress")
	require.NoError(t, err)
	assert.Equal(t, source.Local, src)
	assert.Equal(t, "Ada", m.User().FirstName)
}

func TestLogoutClearsEverything(t *testing.T) {
	st := store.NewMemory()
	m := offlineManager(st)

	_, err := m.Login(context.Background(), DemoEmail, DemoPassword)
	require.NoError(t, err)

	m.Logout()

	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, m.User())
	assert.Empty(t, m.Token())

	var persisted string
	found, err := st.Get(TokenKey, &persisted)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestVerifyWithoutToken(t *testing.T) {
	m := offlineManager(store.NewMemory())
	assert.False(t, m.Loading())

	m.Verify(context.Background())
	assert.False(t, m.Loading())
	assert.False(t, m.IsAuthenticated())
}

// Documents the carried-over limitation: a restored mock session binds to
// the first stored record with an email, not the token's actual owner.
func TestVerifyMockTokenRestoresFirstStoredUser(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, st.Set(TokenKey, MockTokenPrefix+"42"))
	require.NoError(t, st.Set(MockUsersKey, []models.MockUser{
		{ID: 10, FirstName: "First", Email: "first@example.com", Role: models.RoleCustomer},
		{ID: 20, FirstName: "Second", Email: "second@example.com", Role: models.RoleCustomer},
	}))

	m := offlineManager(st)
	assert.True(t, m.Loading())

	m.Verify(context.Background())

	assert.False(t, m.Loading())
	require.NotNil(t, m.User())
	assert.Equal(t, "first@example.com", m.User().Email)
}

func TestVerifyMockTokenFallsBackToDemoUser(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, st.Set(TokenKey, MockTokenPrefix+"42"))

	m := offlineManager(st)
	m.Verify(context.Background())

	require.NotNil(t, m.User())
	assert.Equal(t, DemoEmail, m.User().Email)
	// a failed remote check never invalidates a mock token
	assert.True(t, m.IsAuthenticated())
}

func TestVerifyRealTokenLogsOutOnFailure(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, st.Set(TokenKey, "real-jwt-from-last-session"))

	m := offlineManager(st)
	assert.True(t, m.IsAuthenticated())

	m.Verify(context.Background())

	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, m.User())
}

func TestRemoteLoginPreferred(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/signin":
			json.NewEncoder(w).Encode(map[string]string{"jwt": "backend-token"})
		case "/api/users/profile":
			require.Equal(t, "Bearer backend-token", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(models.User{ID: 77, FirstName: "Remote", Email: "remote@example.com", Role: models.RoleCustomer})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	st := store.NewMemory()
	m := NewManager(restclient.New(srv.URL), st)

	src, err := m.Login(context.Background(), "remote@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, source.Remote, src)
	assert.Equal(t, "backend-token", m.Token())
	require.NotNil(t, m.User())
	assert.Equal(t, int64(77), m.User().ID)
}
