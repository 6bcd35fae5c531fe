package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pagemark/bookstore/internal/api/handlers"
	"github.com/pagemark/bookstore/internal/auth"
	"github.com/pagemark/bookstore/internal/metrics"
	"github.com/pagemark/bookstore/internal/services"
)

// NewRouter creates and configures a new Chi router exposing the bookstore
// collaborator contract.
func NewRouter(
	userService services.UserServiceProvider,
	productService services.ProductServiceProvider,
	cartService services.CartServiceProvider,
	reviewService services.ReviewServiceProvider,
	paymentService services.PaymentServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.HTTPMetricsMiddleware)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	reviewHandler := handlers.NewReviewHandler(reviewService, userService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signin", authHandler.Signin)
		r.Post("/signup", authHandler.Signup)
	})

	r.Route("/api", func(r chi.Router) {
		// Public catalog and review reads
		r.Get("/products", productHandler.GetAll)
		r.Get("/products/{id}", productHandler.Get)
		r.Get("/reviews/product/{productID}", reviewHandler.GetProductReviews)
		r.Get("/ratings/product/{productID}", reviewHandler.GetProductRatings)

		// Everything below requires a bearer token
		r.Group(func(r chi.Router) {
			r.Use(auth.JWTMiddleware())

			r.Get("/users/profile", userHandler.Profile)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.Get)
				r.Put("/add", cartHandler.AddItem)
				r.Delete("/clear", cartHandler.Clear)
				r.Route("/cartItems/{itemID}", func(r chi.Router) {
					r.Put("/", cartHandler.UpdateItem)
					r.Delete("/", cartHandler.RemoveItem)
				})
			})

			r.Post("/reviews/create", reviewHandler.CreateReview)
			r.Post("/ratings/create", reviewHandler.CreateRating)

			r.Route("/payments", func(r chi.Router) {
				r.Post("/add", paymentHandler.Add)
				r.Get("/user", paymentHandler.GetUserPayments)
			})
		})
	})

	return r
}
