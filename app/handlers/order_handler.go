package handlers

import (
	"net/http"

	"github.com/gomartghana/gomart-api/app/apperrors"
	"github.com/gomartghana/gomart-api/app/helpers"
	"github.com/gomartghana/gomart-api/app/middlewares"
	"github.com/gomartghana/gomart-api/app/repositories"
	"github.com/gorilla/mux"
)

type OrderHandler struct {
	orderRepo repositories.OrderRepository
}

func NewOrderHandler(orderRepo repositories.OrderRepository) *OrderHandler {
	return &OrderHandler{orderRepo: orderRepo}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	customer, ok := middlewares.CustomerFromContext(r)
	if !ok {
		helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, user not found")
		return
	}

	orders, err := h.orderRepo.FindByCustomerID(r.Context(), customer.ID)
	if err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "", map[string]interface{}{
		"orders": orders,
	})
}

// Get resolves the order by (id, customer) jointly, so an order owned by
// someone else is indistinguishable from a missing one.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	customer, ok := middlewares.CustomerFromContext(r)
	if !ok {
		helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, user not found")
		return
	}
	id := mux.Vars(r)["id"]

	order, err := h.orderRepo.FindByIDAndCustomer(r.Context(), id, customer.ID)
	if err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}
	if order == nil {
		helpers.RespondErrorMessage(w, http.StatusNotFound, "Order not found")
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "", map[string]interface{}{
		"order": order,
	})
}
