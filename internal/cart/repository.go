package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pagemark/bookstore/internal/models"
	"github.com/pagemark/bookstore/internal/restclient"
	"github.com/pagemark/bookstore/internal/source"
	"github.com/pagemark/bookstore/internal/store"
)

// RemoteRepository performs cart operations against the backend. Mutations
// do not return the new cart; callers reload afterwards, matching the wire
// contract.
type RemoteRepository struct {
	api *restclient.Client
}

// NewRemoteRepository creates a backend-backed cart repository.
func NewRemoteRepository(api *restclient.Client) *RemoteRepository {
	return &RemoteRepository{api: api}
}

func (r *RemoteRepository) Load(ctx context.Context) ([]models.CartItem, error) {
	return r.api.Cart(ctx)
}

func (r *RemoteRepository) Add(ctx context.Context, productID int64, quantity int) error {
	return r.api.AddCartItem(ctx, productID, quantity)
}

func (r *RemoteRepository) Remove(ctx context.Context, itemID int64) error {
	return r.api.RemoveCartItem(ctx, itemID)
}

func (r *RemoteRepository) SetQuantity(ctx context.Context, itemID int64, quantity int) error {
	return r.api.UpdateCartItem(ctx, itemID, quantity)
}

func (r *RemoteRepository) Clear(ctx context.Context) error {
	return r.api.ClearCart(ctx)
}

// LocalRepository persists per-user cart snapshots in the durable local
// store under "cart_{userId}".
type LocalRepository struct {
	store store.Store
}

// NewLocalRepository creates a durable-store-backed cart repository.
func NewLocalRepository(st store.Store) *LocalRepository {
	return &LocalRepository{store: st}
}

func cartKey(userID int64) string {
	return fmt.Sprintf("cart_%d", userID)
}

// Load reads the cached cart for a user. A missing entry is an empty cart.
func (r *LocalRepository) Load(userID int64) ([]models.CartItem, error) {
	var items []models.CartItem
	if _, err := r.store.Get(cartKey(userID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Save replaces the cached cart for a user.
func (r *LocalRepository) Save(userID int64, items []models.CartItem) error {
	return r.store.Set(cartKey(userID), items)
}

// Delete removes the cached cart for a user.
func (r *LocalRepository) Delete(userID int64) error {
	return r.store.Delete(cartKey(userID))
}

// FallbackRepository tries the remote tier first and degrades to the local
// tier on any remote error, making the fallback policy an explicit strategy
// instead of scattered catch blocks. Mutators take the caller's current
// in-memory items because the degraded path mutates that snapshot (which
// may have been loaded remotely) rather than re-reading the durable entry.
type FallbackRepository struct {
	remote *RemoteRepository
	local  *LocalRepository
}

// NewFallbackRepository composes the two tiers.
func NewFallbackRepository(remote *RemoteRepository, local *LocalRepository) *FallbackRepository {
	return &FallbackRepository{remote: remote, local: local}
}

// Load fetches the remote cart, falling back to the durable per-user entry.
func (f *FallbackRepository) Load(ctx context.Context, userID int64) ([]models.CartItem, source.Source, error) {
	items, err := f.remote.Load(ctx)
	if err == nil {
		return items, source.Remote, nil
	}
	log.Warn().Err(err).Int64("user_id", userID).Msg("Backend cart load failed, using local cache")

	items, lerr := f.local.Load(userID)
	if lerr != nil {
		return nil, source.None, lerr
	}
	return items, source.Local, nil
}

// Add adds quantity units of a product. The degraded path merges into an
// existing line for the same product or appends a new line capturing the
// effective unit price, then persists the snapshot.
func (f *FallbackRepository) Add(ctx context.Context, userID int64, current []models.CartItem, product models.Product, quantity int) ([]models.CartItem, source.Source, error) {
	err := f.remote.Add(ctx, product.ID, quantity)
	if err == nil {
		return f.reload(ctx, userID)
	}
	log.Warn().Err(err).Int64("product_id", product.ID).Msg("Backend add to cart failed, using local cache")

	updated := make([]models.CartItem, len(current))
	copy(updated, current)

	merged := false
	for i := range updated {
		if updated[i].Product.ID == product.ID {
			updated[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		updated = append(updated, models.CartItem{
			ID:       time.Now().UnixMilli(),
			Product:  product,
			Quantity: quantity,
			Price:    product.EffectivePrice(),
		})
	}

	if err := f.local.Save(userID, updated); err != nil {
		return current, source.None, err
	}
	return updated, source.Local, nil
}

// Remove deletes a cart line by item id.
func (f *FallbackRepository) Remove(ctx context.Context, userID int64, current []models.CartItem, itemID int64) ([]models.CartItem, source.Source, error) {
	err := f.remote.Remove(ctx, itemID)
	if err == nil {
		return f.reload(ctx, userID)
	}
	log.Warn().Err(err).Int64("item_id", itemID).Msg("Backend cart remove failed, using local cache")

	updated := make([]models.CartItem, 0, len(current))
	for _, item := range current {
		if item.ID != itemID {
			updated = append(updated, item)
		}
	}

	if err := f.local.Save(userID, updated); err != nil {
		return current, source.None, err
	}
	return updated, source.Local, nil
}

// SetQuantity replaces the quantity of a cart line.
func (f *FallbackRepository) SetQuantity(ctx context.Context, userID int64, current []models.CartItem, itemID int64, quantity int) ([]models.CartItem, source.Source, error) {
	err := f.remote.SetQuantity(ctx, itemID, quantity)
	if err == nil {
		return f.reload(ctx, userID)
	}
	log.Warn().Err(err).Int64("item_id", itemID).Msg("Backend cart update failed, using local cache")

	updated := make([]models.CartItem, len(current))
	copy(updated, current)
	for i := range updated {
		if updated[i].ID == itemID {
			updated[i].Quantity = quantity
		}
	}

	if err := f.local.Save(userID, updated); err != nil {
		return current, source.None, err
	}
	return updated, source.Local, nil
}

// Clear empties the cart. The degraded path removes the durable entry
// entirely.
func (f *FallbackRepository) Clear(ctx context.Context, userID int64) (source.Source, error) {
	err := f.remote.Clear(ctx)
	if err == nil {
		return source.Remote, nil
	}
	log.Warn().Err(err).Int64("user_id", userID).Msg("Backend cart clear failed, using local cache")

	if err := f.local.Delete(userID); err != nil {
		return source.None, err
	}
	return source.Local, nil
}

// reload follows a successful remote mutation. Should the reload itself
// fail, the local tier still answers.
func (f *FallbackRepository) reload(ctx context.Context, userID int64) ([]models.CartItem, source.Source, error) {
	items, src, err := f.Load(ctx, userID)
	if err != nil {
		return nil, source.None, err
	}
	if src == source.Local {
		return items, source.Local, nil
	}
	return items, source.Remote, nil
}
