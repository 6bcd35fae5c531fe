package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemark/bookstore/internal/api"
	"github.com/pagemark/bookstore/internal/cart"
	"github.com/pagemark/bookstore/internal/catalog"
	"github.com/pagemark/bookstore/internal/database"
	"github.com/pagemark/bookstore/internal/models"
	"github.com/pagemark/bookstore/internal/restclient"
	"github.com/pagemark/bookstore/internal/services"
	"github.com/pagemark/bookstore/internal/session"
	"github.com/pagemark/bookstore/internal/source"
	"github.com/pagemark/bookstore/internal/store"
)

// startBackend boots the full stub backend on a fresh seeded database.
func startBackend(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "bookstore.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))

	userService := services.NewUserService(db)
	productService := services.NewProductService(db)
	router := api.NewRouter(
		userService,
		productService,
		services.NewCartService(db, productService),
		services.NewReviewService(db),
		services.NewPaymentService(db),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

type client struct {
	api  *restclient.Client
	sess *session.Manager
	cart *cart.Manager
}

func newClient(srv *httptest.Server) *client {
	api := restclient.New(srv.URL)
	st := store.NewMemory()
	sess := session.NewManager(api, st)
	return &client{api: api, sess: sess, cart: cart.NewManager(sess, api, st)}
}

func TestCartRequiresLoginEndToEnd(t *testing.T) {
	srv := startBackend(t)
	c := newClient(srv)

	watchmen := catalog.Books[8]
	src, err := c.cart.AddToCart(context.Background(), watchmen, 1)
	assert.ErrorIs(t, err, cart.ErrUnauthenticated)
	assert.Equal(t, source.None, src)
	assert.Empty(t, c.cart.Items())
}

func TestDemoShoppingFlowEndToEnd(t *testing.T) {
	srv := startBackend(t)
	c := newClient(srv)
	ctx := context.Background()

	src, err := c.sess.Login(ctx, session.DemoEmail, session.DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, source.Remote, src)
	require.NotNil(t, c.sess.User())
	assert.Equal(t, session.DemoEmail, c.sess.User().Email)

	watchmen := catalog.Books[8]
	src, err = c.cart.AddToCart(ctx, watchmen, 1)
	require.NoError(t, err)
	assert.Equal(t, source.Remote, src)

	assert.Equal(t, 1, c.cart.CartItemCount())
	assert.Equal(t, 719.0, c.cart.CartTotal())
	require.Len(t, c.cart.Items(), 1)
	assert.Equal(t, 719.0, c.cart.Items()[0].Price)

	// adding the same product again merges into one line
	_, err = c.cart.AddToCart(ctx, watchmen, 2)
	require.NoError(t, err)
	require.Len(t, c.cart.Items(), 1)
	assert.Equal(t, 3, c.cart.Items()[0].Quantity)

	itemID := c.cart.Items()[0].ID
	src, err = c.cart.UpdateQuantity(ctx, itemID, 5)
	require.NoError(t, err)
	assert.Equal(t, source.Remote, src)
	assert.Equal(t, 5, c.cart.CartItemCount())

	// the server cart survives a fresh client session
	again := newClient(srv)
	_, err = again.sess.Login(ctx, session.DemoEmail, session.DemoPassword)
	require.NoError(t, err)
	src, err = again.cart.LoadCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, source.Remote, src)
	require.Len(t, again.cart.Items(), 1)
	assert.Equal(t, 5, again.cart.Items()[0].Quantity)

	src, err = again.cart.RemoveFromCart(ctx, again.cart.Items()[0].ID)
	require.NoError(t, err)
	assert.Equal(t, source.Remote, src)
	assert.Empty(t, again.cart.Items())
}

func TestClearCartEndToEnd(t *testing.T) {
	srv := startBackend(t)
	c := newClient(srv)
	ctx := context.Background()

	_, err := c.sess.Login(ctx, session.DemoEmail, session.DemoPassword)
	require.NoError(t, err)

	_, err = c.cart.AddToCart(ctx, catalog.Books[0], 1)
	require.NoError(t, err)
	_, err = c.cart.AddToCart(ctx, catalog.Books[1], 2)
	require.NoError(t, err)
	require.Len(t, c.cart.Items(), 2)

	src, err := c.cart.ClearCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, source.Remote, src)
	assert.Empty(t, c.cart.Items())

	src, err = c.cart.LoadCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, source.Remote, src)
	assert.Empty(t, c.cart.Items())
}

func TestSignupEndToEnd(t *testing.T) {
	srv := startBackend(t)
	c := newClient(srv)
	ctx := context.Background()

	src, err := c.sess.Signup(ctx, models.SignupRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "enchantress",
	})
	require.NoError(t, err)
	assert.Equal(t, source.Remote, src)
	require.NotNil(t, c.sess.User())
	assert.Equal(t, "ada@example.com", c.sess.User().Email)
	assert.Equal(t, models.RoleCustomer, c.sess.User().Role)

	// the new account signs back in with the same credentials
	fresh := newClient(srv)
	src, err = fresh.sess.Login(ctx, "ada@example.com", "enchantress")
	require.NoError(t, err)
	assert.Equal(t, source.Remote, src)
	assert.Equal(t, "Ada", fresh.sess.User().FirstName)
}

func TestReviewsAndRatingsEndToEnd(t *testing.T) {
	srv := startBackend(t)
	c := newClient(srv)
	ctx := context.Background()

	_, err := c.sess.Login(ctx, session.DemoEmail, session.DemoPassword)
	require.NoError(t, err)

	review, err := c.api.CreateReview(ctx, 9, "A landmark of the form")
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	assert.Equal(t, "A landmark of the form", review.Review)

	rating, err := c.api.CreateRating(ctx, 9, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, rating.Rating)

	// reads are public
	anon := restclient.New(srv.URL)
	reviews, err := anon.ProductReviews(ctx, 9)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.NotNil(t, reviews[0].User)
	assert.Equal(t, session.DemoEmail, reviews[0].User.Email)

	ratings, err := anon.ProductRatings(ctx, 9)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, 5, ratings[0].Rating)
}

func TestPaymentsEndToEnd(t *testing.T) {
	srv := startBackend(t)
	c := newClient(srv)
	ctx := context.Background()

	_, err := c.sess.Login(ctx, session.DemoEmail, session.DemoPassword)
	require.NoError(t, err)

	err = c.api.AddPaymentMethod(ctx, models.PaymentInformation{
		CardholderName: "Test User",
		CardNumber:     "**** **** **** 3456",
		ExpirationDate: "12/28",
	})
	require.NoError(t, err)

	methods, err := c.api.PaymentMethods(ctx)
	require.NoError(t, err)
	require.Len(t, methods, 1)
	assert.Equal(t, "**** **** **** 3456", methods[0].CardNumber)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	srv := startBackend(t)
	anon := restclient.New(srv.URL)

	_, err := anon.Cart(context.Background())
	var apiErr *restclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	_, err = anon.Profile(context.Background())
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestPublicCatalogEndpoints(t *testing.T) {
	srv := startBackend(t)

	resp, err := http.Get(srv.URL + "/api/products")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Get(srv.URL + "/api/products/9")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)

	resp3, err := http.Get(srv.URL + "/api/products/9999")
	require.NoError(t, err)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp3.StatusCode)
}
