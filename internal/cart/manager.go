// Package cart maintains the authenticated user's shopping cart and its
// derived totals, degrading transparently to the durable local store when
// the backend is unreachable.
package cart

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/pagemark/bookstore/internal/models"
	"github.com/pagemark/bookstore/internal/restclient"
	"github.com/pagemark/bookstore/internal/session"
	"github.com/pagemark/bookstore/internal/source"
	"github.com/pagemark/bookstore/internal/store"
)

// ErrUnauthenticated is returned by every cart operation when no session is
// established. The operation produces no state change.
var ErrUnauthenticated = errors.New("please login to use the cart")

// Manager owns the in-memory cart for the authenticated user. All mutators
// require an authenticated session and follow the remote-first policy of
// FallbackRepository: a remote error degrades silently to the local tier and
// the operation still succeeds, reporting source.Local.
//
// Not safe for concurrent use; overlapping mutators are last-writer-wins on
// the durable snapshot, an accepted limitation of the fallback model.
type Manager struct {
	session *session.Manager
	repo    *FallbackRepository
	items   []models.CartItem
	loading bool
}

// NewManager creates a cart manager bound to the given session.
func NewManager(sess *session.Manager, api *restclient.Client, st store.Store) *Manager {
	return &Manager{
		session: sess,
		repo:    NewFallbackRepository(NewRemoteRepository(api), NewLocalRepository(st)),
	}
}

// Items returns the current cart lines.
func (m *Manager) Items() []models.CartItem { return m.items }

// Loading reports whether a cart operation is in flight.
func (m *Manager) Loading() bool { return m.loading }

// CartTotal sums unit price times quantity over all lines. Pure.
func (m *Manager) CartTotal() float64 {
	var total float64
	for _, item := range m.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// CartItemCount sums the quantities over all lines. Pure.
func (m *Manager) CartItemCount() int {
	var count int
	for _, item := range m.items {
		count += item.Quantity
	}
	return count
}

// Reset empties the in-memory cart. Called when the authenticated user logs
// out or switches; the durable snapshots of other users are untouched.
func (m *Manager) Reset() {
	m.items = nil
}

func (m *Manager) userID() (int64, bool) {
	if !m.session.IsAuthenticated() || m.session.User() == nil {
		return 0, false
	}
	return m.session.User().ID, true
}

// LoadCart replaces the in-memory cart with the remote cart, or with the
// durable per-user snapshot when the backend is unreachable.
func (m *Manager) LoadCart(ctx context.Context) (source.Source, error) {
	userID, ok := m.userID()
	if !ok {
		return source.None, ErrUnauthenticated
	}
	m.loading = true
	defer func() { m.loading = false }()

	items, src, err := m.repo.Load(ctx, userID)
	if err != nil {
		return source.None, err
	}
	m.items = items
	return src, nil
}

// AddToCart adds quantity units of a product. Adding a product already in
// the cart increments its line instead of creating a duplicate.
func (m *Manager) AddToCart(ctx context.Context, product models.Product, quantity int) (source.Source, error) {
	userID, ok := m.userID()
	if !ok {
		log.Warn().Int64("product_id", product.ID).Msg("Add to cart rejected: not authenticated")
		return source.None, ErrUnauthenticated
	}
	m.loading = true
	defer func() { m.loading = false }()

	items, src, err := m.repo.Add(ctx, userID, m.items, product, quantity)
	if err != nil {
		return source.None, err
	}
	m.items = items
	return src, nil
}

// RemoveFromCart deletes a cart line by its item id.
func (m *Manager) RemoveFromCart(ctx context.Context, itemID int64) (source.Source, error) {
	userID, ok := m.userID()
	if !ok {
		return source.None, ErrUnauthenticated
	}
	m.loading = true
	defer func() { m.loading = false }()

	items, src, err := m.repo.Remove(ctx, userID, m.items, itemID)
	if err != nil {
		return source.None, err
	}
	m.items = items
	return src, nil
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less behaves
// exactly like RemoveFromCart.
func (m *Manager) UpdateQuantity(ctx context.Context, itemID int64, quantity int) (source.Source, error) {
	if quantity <= 0 {
		return m.RemoveFromCart(ctx, itemID)
	}
	userID, ok := m.userID()
	if !ok {
		return source.None, ErrUnauthenticated
	}
	m.loading = true
	defer func() { m.loading = false }()

	items, src, err := m.repo.SetQuantity(ctx, userID, m.items, itemID, quantity)
	if err != nil {
		return source.None, err
	}
	m.items = items
	return src, nil
}

// ClearCart empties the cart remotely, or empties memory and removes the
// durable snapshot when the backend is unreachable.
func (m *Manager) ClearCart(ctx context.Context) (source.Source, error) {
	userID, ok := m.userID()
	if !ok {
		return source.None, ErrUnauthenticated
	}
	m.loading = true
	defer func() { m.loading = false }()

	src, err := m.repo.Clear(ctx, userID)
	if err != nil {
		return source.None, err
	}
	m.items = nil
	return src, nil
}
