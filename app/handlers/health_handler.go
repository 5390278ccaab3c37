package handlers

import (
	"net/http"
	"time"

	"github.com/gomartghana/gomart-api/app/helpers"
)

func Health(w http.ResponseWriter, r *http.Request) {
	helpers.RespondSuccess(w, http.StatusOK, "GoMart Backend is running!", map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func Welcome(w http.ResponseWriter, r *http.Request) {
	helpers.RespondSuccess(w, http.StatusOK, "Welcome to GoMart API - Ghana's Premier E-commerce Platform", map[string]interface{}{
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":     "/health",
			"customers":  "/api/customers",
			"products":   "/api/products",
			"categories": "/api/categories",
			"orders":     "/api/orders",
			"payments":   "/api/payments",
			"vendors":    "/api/vendors",
			"cart":       "/api/cart",
			"reviews":    "/api/reviews",
		},
	})
}
