package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gomartghana/gomart-api/app/helpers"
	"github.com/gomartghana/gomart-api/app/middlewares"
	"github.com/gomartghana/gomart-api/app/services"
	"github.com/gorilla/mux"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	customer, ok := middlewares.CustomerFromContext(r)
	if !ok {
		helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, user not found")
		return
	}

	cart, err := h.cartService.GetCart(r.Context(), customer.ID)
	if err != nil {
		helpers.RespondError(w, err)
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "", map[string]interface{}{
		"cart": cart,
	})
}

type addCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	customer, ok := middlewares.CustomerFromContext(r)
	if !ok {
		helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, user not found")
		return
	}

	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.cartService.AddItem(r.Context(), customer.ID, req.ProductID, req.Quantity)
	if err != nil {
		helpers.RespondError(w, err)
		return
	}

	helpers.RespondSuccess(w, http.StatusCreated, "Item added to cart", map[string]interface{}{
		"cart": cart,
	})
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	customer, ok := middlewares.CustomerFromContext(r)
	if !ok {
		helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, user not found")
		return
	}
	itemID := mux.Vars(r)["id"]

	var req updateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, err := h.cartService.UpdateItemQuantity(r.Context(), customer.ID, itemID, req.Quantity)
	if err != nil {
		helpers.RespondError(w, err)
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "Cart item updated", map[string]interface{}{
		"cart": cart,
	})
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	customer, ok := middlewares.CustomerFromContext(r)
	if !ok {
		helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, user not found")
		return
	}
	itemID := mux.Vars(r)["id"]

	cart, err := h.cartService.RemoveItem(r.Context(), customer.ID, itemID)
	if err != nil {
		helpers.RespondError(w, err)
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "Item removed from cart", map[string]interface{}{
		"cart": cart,
	})
}
