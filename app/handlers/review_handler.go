package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gomartghana/gomart-api/app/apperrors"
	"github.com/gomartghana/gomart-api/app/helpers"
	"github.com/gomartghana/gomart-api/app/middlewares"
	"github.com/gomartghana/gomart-api/app/models"
	"github.com/gomartghana/gomart-api/app/repositories"
	"github.com/gorilla/mux"
)

type ReviewHandler struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepositoryImpl
}

func NewReviewHandler(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepositoryImpl) *ReviewHandler {
	return &ReviewHandler{reviewRepo: reviewRepo, productRepo: productRepo}
}

type createReviewRequest struct {
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	customer, ok := middlewares.CustomerFromContext(r)
	if !ok {
		helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, user not found")
		return
	}

	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ProductID == "" || req.Rating == 0 {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Product ID and rating are required")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	product, err := h.productRepo.FindByID(r.Context(), req.ProductID)
	if err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}
	if product == nil {
		helpers.RespondErrorMessage(w, http.StatusNotFound, "Product not found")
		return
	}

	existing, err := h.reviewRepo.FindByCustomerAndProduct(r.Context(), customer.ID, req.ProductID)
	if err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}
	if existing != nil {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "You have already reviewed this product")
		return
	}

	review := &models.Review{
		CustomerID: customer.ID,
		ProductID:  req.ProductID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := h.reviewRepo.Create(r.Context(), review); err != nil {
		helpers.RespondError(w, err)
		return
	}
	review.Customer = customer

	helpers.RespondSuccess(w, http.StatusCreated, "Review created successfully", map[string]interface{}{
		"review": review,
	})
}

func (h *ReviewHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	product, err := h.productRepo.FindByID(r.Context(), productID)
	if err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}
	if product == nil {
		helpers.RespondErrorMessage(w, http.StatusNotFound, "Product not found")
		return
	}

	reviews, err := h.reviewRepo.FindByProductID(r.Context(), productID)
	if err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "", map[string]interface{}{
		"reviews": reviews,
	})
}
