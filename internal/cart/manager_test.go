package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemark/bookstore/internal/models"
	"github.com/pagemark/bookstore/internal/restclient"
	"github.com/pagemark/bookstore/internal/session"
	"github.com/pagemark/bookstore/internal/source"
	"github.com/pagemark/bookstore/internal/store"
)

var watchmen = models.Product{ID: 9, Title: "Watchmen", Price: 899, DiscountedPrice: 719, Category: "comics"}

// fixture wires session and cart managers against a dead backend so every
// operation exercises the local fallback tier.
type fixture struct {
	api   *restclient.Client
	store *store.Memory
	sess  *session.Manager
	cart  *Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	api := restclient.New("http://127.0.0.1:1")
	st := store.NewMemory()
	sess := session.NewManager(api, st)
	return &fixture{api: api, store: st, sess: sess, cart: NewManager(sess, api, st)}
}

func (f *fixture) login(t *testing.T) {
	t.Helper()
	src, err := f.sess.Login(context.Background(), session.DemoEmail, session.DemoPassword)
	require.NoError(t, err)
	require.Equal(t, source.Local, src)
}

func TestMutatorsRequireAuthentication(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	src, err := f.cart.AddToCart(ctx, watchmen, 1)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, source.None, src)
	assert.Empty(t, f.cart.Items())

	_, err = f.cart.LoadCart(ctx)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = f.cart.RemoveFromCart(ctx, 1)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = f.cart.UpdateQuantity(ctx, 1, 2)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = f.cart.ClearCart(ctx)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	assert.Zero(t, f.cart.CartItemCount())
	assert.Zero(t, f.cart.CartTotal())
}

func TestAddCapturesEffectivePrice(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	ctx := context.Background()

	src, err := f.cart.AddToCart(ctx, watchmen, 1)
	require.NoError(t, err)
	assert.Equal(t, source.Local, src)

	require.Len(t, f.cart.Items(), 1)
	assert.Equal(t, 719.0, f.cart.Items()[0].Price)
	assert.Equal(t, 1, f.cart.CartItemCount())
	assert.Equal(t, 719.0, f.cart.CartTotal())
}

func TestAddWithoutDiscountCapturesListPrice(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	ctx := context.Background()

	noDiscount := models.Product{ID: 2, Title: "Dune", Price: 700}
	_, err := f.cart.AddToCart(ctx, noDiscount, 1)
	require.NoError(t, err)

	// a "discount" at or above list price does not count
	bogusDiscount := models.Product{ID: 3, Title: "Cosmos", Price: 650, DiscountedPrice: 650}
	_, err = f.cart.AddToCart(ctx, bogusDiscount, 1)
	require.NoError(t, err)

	require.Len(t, f.cart.Items(), 2)
	assert.Equal(t, 700.0, f.cart.Items()[0].Price)
	assert.Equal(t, 650.0, f.cart.Items()[1].Price)
}

func TestAddMergesDuplicateProductLines(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	ctx := context.Background()

	_, err := f.cart.AddToCart(ctx, watchmen, 2)
	require.NoError(t, err)
	_, err = f.cart.AddToCart(ctx, watchmen, 3)
	require.NoError(t, err)

	require.Len(t, f.cart.Items(), 1)
	assert.Equal(t, 5, f.cart.Items()[0].Quantity)
	assert.Equal(t, 5, f.cart.CartItemCount())
	assert.Equal(t, 719.0*5, f.cart.CartTotal())
}

func TestUpdateQuantity(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	ctx := context.Background()

	_, err := f.cart.AddToCart(ctx, watchmen, 1)
	require.NoError(t, err)
	itemID := f.cart.Items()[0].ID

	src, err := f.cart.UpdateQuantity(ctx, itemID, 7)
	require.NoError(t, err)
	assert.Equal(t, source.Local, src)
	assert.Equal(t, 7, f.cart.Items()[0].Quantity)
	assert.Equal(t, 719.0*7, f.cart.CartTotal())
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		f := newFixture(t)
		f.login(t)
		ctx := context.Background()

		_, err := f.cart.AddToCart(ctx, watchmen, 2)
		require.NoError(t, err)
		itemID := f.cart.Items()[0].ID

		_, err = f.cart.UpdateQuantity(ctx, itemID, quantity)
		require.NoError(t, err)
		assert.Empty(t, f.cart.Items())
	}
}

func TestRemoveFromCart(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	ctx := context.Background()

	_, err := f.cart.AddToCart(ctx, watchmen, 1)
	require.NoError(t, err)
	other := models.Product{ID: 2, Title: "Dune", Price: 700}
	_, err = f.cart.AddToCart(ctx, other, 1)
	require.NoError(t, err)

	_, err = f.cart.RemoveFromCart(ctx, f.cart.Items()[0].ID)
	require.NoError(t, err)
	require.Len(t, f.cart.Items(), 1)
	assert.Equal(t, int64(2), f.cart.Items()[0].Product.ID)
}

func TestCartTotalIdempotent(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	_, err := f.cart.AddToCart(context.Background(), watchmen, 3)
	require.NoError(t, err)

	first := f.cart.CartTotal()
	assert.Equal(t, first, f.cart.CartTotal())
	assert.Equal(t, f.cart.CartItemCount(), f.cart.CartItemCount())
}

func TestCartPersistsAcrossManagers(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	ctx := context.Background()

	_, err := f.cart.AddToCart(ctx, watchmen, 2)
	require.NoError(t, err)

	// a new manager for the same user reloads the durable snapshot
	reloaded := NewManager(f.sess, f.api, f.store)
	src, err := reloaded.LoadCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, source.Local, src)
	require.Len(t, reloaded.Items(), 1)
	assert.Equal(t, 2, reloaded.Items()[0].Quantity)
}

func TestClearCartRemovesDurableSnapshot(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	ctx := context.Background()

	_, err := f.cart.AddToCart(ctx, watchmen, 1)
	require.NoError(t, err)

	src, err := f.cart.ClearCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, source.Local, src)
	assert.Empty(t, f.cart.Items())

	reloaded := NewManager(f.sess, f.api, f.store)
	_, err = reloaded.LoadCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Items())
}

func TestUserSwitchStartsWithEmptyCart(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	ctx := context.Background()

	_, err := f.cart.AddToCart(ctx, watchmen, 1)
	require.NoError(t, err)

	f.sess.Logout()
	f.cart.Reset()
	assert.Empty(t, f.cart.Items())

	// a different identity sees its own (empty) snapshot
	_, err = f.sess.Signup(ctx, models.SignupRequest{
		FirstName: "Other", LastName: "User", Email: "other@example.com", Password: "pw",
	})
	require.NoError(t, err)

	_, err = f.cart.LoadCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, f.cart.Items())
}
