package routes

import (
	"net/http"

	"github.com/gomartghana/gomart-api/app/configs"
	"github.com/gomartghana/gomart-api/app/handlers"
	"github.com/gomartghana/gomart-api/app/middlewares"
	"github.com/gomartghana/gomart-api/app/repositories"
	"github.com/gomartghana/gomart-api/app/services"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers onto a mux router.
// Global middleware runs on every request; the customer and vendor gates
// are attached per subrouter so public routes stay public.
func NewRouter(db *gorm.DB, env configs.ENV, logger zerolog.Logger) *mux.Router {
	customerRepo := repositories.NewCustomerRepository(db)
	vendorRepo := repositories.NewVendorRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	authService := services.NewAuthService(customerRepo, vendorRepo, cartRepo, env.JWTSecret, logger)
	cartService := services.NewCartService(cartRepo, productRepo)
	paymentService := services.NewPaymentService(orderRepo, paymentRepo, logger)
	vendorService := services.NewVendorService(vendorRepo, logger)

	customerHandler := handlers.NewCustomerHandler(authService, customerRepo)
	vendorHandler := handlers.NewVendorHandler(authService, vendorService, vendorRepo)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	productHandler := handlers.NewProductHandler(productRepo, categoryRepo)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderRepo)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	reviewHandler := handlers.NewReviewHandler(reviewRepo, productRepo)

	requireCustomer := middlewares.RequireCustomer(authService, customerRepo)
	requireVendor := middlewares.RequireVendor(authService, vendorRepo)
	optionalAuth := middlewares.OptionalAuth(authService, customerRepo)

	limiter := rate.NewLimiter(rate.Limit(env.RateLimitPerSec), env.RateLimitBurst)

	r := mux.NewRouter()
	r.Use(middlewares.Recovery(logger))
	r.Use(middlewares.CORS(env.CORSOrigin))
	r.Use(middlewares.RateLimit(limiter))
	r.Use(middlewares.RequestLogging(logger))

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.HandleFunc("/", handlers.Welcome).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Customers
	api.HandleFunc("/customers/register", customerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/customers/login", customerHandler.Login).Methods(http.MethodPost)

	customerArea := api.PathPrefix("/customers").Subrouter()
	customerArea.Use(requireCustomer)
	customerArea.HandleFunc("/profile", customerHandler.Profile).Methods(http.MethodGet)
	customerArea.HandleFunc("/profile", customerHandler.UpdateProfile).Methods(http.MethodPut)
	customerArea.HandleFunc("/change-password", customerHandler.ChangePassword).Methods(http.MethodPut)

	// Vendors
	api.HandleFunc("/vendors/register", vendorHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/vendors/login", vendorHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/vendors", vendorHandler.List).Methods(http.MethodGet)

	vendorArea := api.PathPrefix("/vendors/profile").Subrouter()
	vendorArea.Use(requireVendor)
	vendorArea.HandleFunc("", vendorHandler.UpdateProfile).Methods(http.MethodPut)
	vendorArea.HandleFunc("", vendorHandler.Deactivate).Methods(http.MethodDelete)

	api.HandleFunc("/vendors/{id}", vendorHandler.Get).Methods(http.MethodGet)

	// Categories
	api.HandleFunc("/categories", categoryHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id}", categoryHandler.Get).Methods(http.MethodGet)

	// Products. Browsing is public but picks up the customer identity when
	// a valid token is presented.
	browse := api.PathPrefix("/products").Subrouter()
	browse.Use(optionalAuth)
	browse.HandleFunc("", productHandler.List).Methods(http.MethodGet)
	browse.HandleFunc("/{id}", productHandler.Get).Methods(http.MethodGet)

	productArea := api.PathPrefix("/products").Subrouter()
	productArea.Use(requireVendor)
	productArea.HandleFunc("", productHandler.Create).Methods(http.MethodPost)
	productArea.HandleFunc("/{id}", productHandler.Update).Methods(http.MethodPut)
	productArea.HandleFunc("/{id}", productHandler.Delete).Methods(http.MethodDelete)

	// Cart
	cartArea := api.PathPrefix("/cart").Subrouter()
	cartArea.Use(requireCustomer)
	cartArea.HandleFunc("", cartHandler.Get).Methods(http.MethodGet)
	cartArea.HandleFunc("/items", cartHandler.AddItem).Methods(http.MethodPost)
	cartArea.HandleFunc("/items/{id}", cartHandler.UpdateItem).Methods(http.MethodPut)
	cartArea.HandleFunc("/items/{id}", cartHandler.RemoveItem).Methods(http.MethodDelete)

	// Orders
	orderArea := api.PathPrefix("/orders").Subrouter()
	orderArea.Use(requireCustomer)
	orderArea.HandleFunc("", orderHandler.List).Methods(http.MethodGet)
	orderArea.HandleFunc("/{id}", orderHandler.Get).Methods(http.MethodGet)

	// Payments. The callback is called by the gateway, not a customer.
	paymentArea := api.PathPrefix("/payments/process").Subrouter()
	paymentArea.Use(requireCustomer)
	paymentArea.HandleFunc("", paymentHandler.Process).Methods(http.MethodPost)

	api.HandleFunc("/payments/callback", paymentHandler.Callback).Methods(http.MethodPost)

	// Reviews
	reviewArea := api.PathPrefix("/reviews").Subrouter()
	reviewArea.Use(requireCustomer)
	reviewArea.HandleFunc("", reviewHandler.Create).Methods(http.MethodPost)

	api.HandleFunc("/reviews/product/{id}", reviewHandler.ListByProduct).Methods(http.MethodGet)

	return r
}
