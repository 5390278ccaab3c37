package middlewares

import (
	"context"
	"net/http"

	"github.com/gomartghana/gomart-api/app/helpers"
	"github.com/gomartghana/gomart-api/app/models"
	"github.com/gomartghana/gomart-api/app/repositories"
	"github.com/gomartghana/gomart-api/app/services"
)

// RequireCustomer rejects any request that does not carry a valid token
// resolving to an existing, active customer. The resolved customer is
// attached to the request context.
func RequireCustomer(auth *services.AuthService, customerRepo repositories.CustomerRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := helpers.BearerToken(r)
			if !ok {
				helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, no token provided")
				return
			}

			claims, err := auth.VerifyToken(token)
			if err != nil {
				helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			customer, err := customerRepo.FindByID(r.Context(), claims.ID)
			if err != nil {
				helpers.RespondError(w, err)
				return
			}
			if customer == nil {
				helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, user not found")
				return
			}
			if !customer.IsActive {
				helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Account is inactive, please contact support")
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyCustomer, customer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireVendor is the vendor-side gate. An unverified vendor is a known
// identity with insufficient privilege, so it gets 403 rather than 401.
func RequireVendor(auth *services.AuthService, vendorRepo repositories.VendorRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := helpers.BearerToken(r)
			if !ok {
				helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, no token provided")
				return
			}

			claims, err := auth.VerifyToken(token)
			if err != nil {
				helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			vendor, err := vendorRepo.FindByID(r.Context(), claims.ID)
			if err != nil {
				helpers.RespondError(w, err)
				return
			}
			if vendor == nil {
				helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, vendor not found")
				return
			}
			if !vendor.IsActive {
				helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Account is inactive, please contact support")
				return
			}
			if !vendor.IsVerified {
				helpers.RespondErrorMessage(w, http.StatusForbidden, "Vendor account not verified, please contact support")
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyVendor, vendor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth never blocks. It attaches a customer identity only when the
// presented token verifies cleanly and the account is active; any failure
// falls through to an anonymous request.
func OptionalAuth(auth *services.AuthService, customerRepo repositories.CustomerRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := helpers.BearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.VerifyToken(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			customer, err := customerRepo.FindByID(r.Context(), claims.ID)
			if err == nil && customer != nil && customer.IsActive {
				ctx := context.WithValue(r.Context(), helpers.ContextKeyCustomer, customer)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CustomerFromContext returns the customer attached by RequireCustomer or
// OptionalAuth.
func CustomerFromContext(r *http.Request) (*models.Customer, bool) {
	customer, ok := r.Context().Value(helpers.ContextKeyCustomer).(*models.Customer)
	return customer, ok
}

func VendorFromContext(r *http.Request) (*models.Vendor, bool) {
	vendor, ok := r.Context().Value(helpers.ContextKeyVendor).(*models.Vendor)
	return vendor, ok
}
