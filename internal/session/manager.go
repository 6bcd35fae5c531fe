// Package session owns the current user identity and bearer-credential
// lifecycle. Authentication tries the backend first and degrades to a
// durable mock-credential tier when the backend is unreachable, so the
// client stays usable offline.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pagemark/bookstore/internal/models"
	"github.com/pagemark/bookstore/internal/restclient"
	"github.com/pagemark/bookstore/internal/source"
	"github.com/pagemark/bookstore/internal/store"
)

const (
	// TokenKey is the durable-store key holding the current bearer token.
	TokenKey = "token"
	// MockUsersKey is the durable-store key holding locally registered
	// accounts.
	MockUsersKey = "mockUsers"
	// MockTokenPrefix marks tokens minted by the mock tier. A failed remote
	// verification never invalidates a token carrying this prefix.
	MockTokenPrefix = "mock-jwt-token-"

	// DemoEmail and DemoPassword are the built-in demo credentials that work
	// without any backend or prior signup.
	DemoEmail    = "test@example.com"
	DemoPassword = "password123"
)

// ErrInvalidCredentials is returned when neither the backend nor the mock
// tier accepts a login.
var ErrInvalidCredentials = errors.New("invalid credentials: sign up first or use " + DemoEmail + " / " + DemoPassword + " for demo")

func demoUser() models.User {
	return models.User{
		ID:        1,
		FirstName: "Test",
		LastName:  "User",
		Email:     DemoEmail,
		Role:      models.RoleCustomer,
	}
}

// Manager establishes, verifies and tears down the authenticated session.
// Not safe for concurrent use: the client core is single-threaded event
// glue and issuing overlapping operations is an accepted limitation.
type Manager struct {
	api     *restclient.Client
	store   store.Store
	user    *models.User
	token   string
	loading bool
}

// NewManager creates a session manager, restoring any persisted token. The
// caller should run Verify once at startup to resolve the restored token
// into a user; until then Loading reports true whenever a token is present.
func NewManager(api *restclient.Client, st store.Store) *Manager {
	m := &Manager{api: api, store: st}
	var token string
	ok, err := st.Get(TokenKey, &token)
	if err != nil {
		log.Error().Err(err).Msg("Failed to restore token from local store")
	}
	if ok && token != "" {
		m.token = token
		m.loading = true
		api.SetToken(token)
	}
	return m
}

// User returns the resolved account, or nil while unauthenticated or before
// verification completes.
func (m *Manager) User() *models.User { return m.user }

// Token returns the current bearer token, empty when unauthenticated.
func (m *Manager) Token() string { return m.token }

// Loading reports whether a restored token is still awaiting verification.
func (m *Manager) Loading() bool { return m.loading }

// IsAuthenticated reports whether a bearer token is present. Token presence
// is the sole authentication signal; the user may still be resolving.
func (m *Manager) IsAuthenticated() bool { return m.token != "" }

// Verify resolves a restored token into a user. Mock tokens are rebuilt from
// the durable mock-user collection; real tokens are checked against the
// backend profile endpoint, and a failed check logs the session out.
func (m *Manager) Verify(ctx context.Context) {
	defer func() { m.loading = false }()

	if m.token == "" {
		return
	}

	if strings.HasPrefix(m.token, MockTokenPrefix) {
		// Restores the first stored record with an email rather than the
		// token's actual owner. Known limitation carried over from the
		// original behavior; see DESIGN.md.
		var mockUsers []models.MockUser
		if _, err := m.store.Get(MockUsersKey, &mockUsers); err != nil {
			log.Error().Err(err).Msg("Failed to read mock users from local store")
		}
		for _, mu := range mockUsers {
			if mu.Email != "" {
				u := mu.User()
				m.user = &u
				return
			}
		}
		u := demoUser()
		m.user = &u
		return
	}

	user, err := m.api.Profile(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Token verification failed, logging out")
		m.Logout()
		return
	}
	m.user = &user
}

// Login authenticates against the backend, falling back to the durable
// mock-credential tier on any remote error. The returned source tells the
// caller which tier succeeded.
func (m *Manager) Login(ctx context.Context, email, password string) (source.Source, error) {
	token, err := m.api.SignIn(ctx, email, password)
	if err == nil {
		var user models.User
		m.api.SetToken(token)
		user, err = m.api.Profile(ctx)
		if err == nil {
			m.establish(token, user)
			return source.Remote, nil
		}
		m.api.ClearToken()
	}
	log.Warn().Err(err).Str("email", email).Msg("Backend login failed, trying mock credentials")

	if email == DemoEmail && password == DemoPassword {
		m.establish(m.mintMockToken(), demoUser())
		return source.Local, nil
	}

	var mockUsers []models.MockUser
	if _, err := m.store.Get(MockUsersKey, &mockUsers); err != nil {
		log.Error().Err(err).Msg("Failed to read mock users from local store")
	}
	for _, mu := range mockUsers {
		if mu.Email == email && mu.Password == password {
			m.establish(m.mintMockToken(), mu.User())
			return source.Local, nil
		}
	}

	return source.None, ErrInvalidCredentials
}

// Signup registers against the backend, falling back to appending a mock
// user record locally. The mock path never fails validation.
func (m *Manager) Signup(ctx context.Context, req models.SignupRequest) (source.Source, error) {
	token, err := m.api.SignUp(ctx, req)
	if err == nil {
		var user models.User
		m.api.SetToken(token)
		user, err = m.api.Profile(ctx)
		if err == nil {
			m.establish(token, user)
			return source.Remote, nil
		}
		m.api.ClearToken()
	}
	log.Warn().Err(err).Str("email", req.Email).Msg("Backend signup failed, registering mock user")

	mock := models.MockUser{
		ID:        time.Now().UnixMilli(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      models.RoleCustomer,
	}
	var mockUsers []models.MockUser
	if _, err := m.store.Get(MockUsersKey, &mockUsers); err != nil {
		log.Error().Err(err).Msg("Failed to read mock users from local store")
	}
	mockUsers = append(mockUsers, mock)
	if err := m.store.Set(MockUsersKey, mockUsers); err != nil {
		log.Error().Err(err).Msg("Failed to persist mock users")
	}

	m.establish(m.mintMockToken(), mock.User())
	return source.Local, nil
}

// Logout clears the user, the token and the durable token entry, and
// detaches the authorization header. Always succeeds.
func (m *Manager) Logout() {
	m.user = nil
	m.token = ""
	m.api.ClearToken()
	if err := m.store.Delete(TokenKey); err != nil {
		log.Error().Err(err).Msg("Failed to remove persisted token")
	}
}

func (m *Manager) establish(token string, user models.User) {
	m.token = token
	m.user = &user
	m.api.SetToken(token)
	if err := m.store.Set(TokenKey, token); err != nil {
		log.Error().Err(err).Msg("Failed to persist token")
	}
}

func (m *Manager) mintMockToken() string {
	return fmt.Sprintf("%s%d", MockTokenPrefix, time.Now().UnixMilli())
}
