package handlers

import (
	"net/http"

	"github.com/gomartghana/gomart-api/app/apperrors"
	"github.com/gomartghana/gomart-api/app/helpers"
	"github.com/gomartghana/gomart-api/app/repositories"
	"github.com/gorilla/mux"
)

type CategoryHandler struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryHandler(categoryRepo repositories.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.FindAll(r.Context())
	if err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "", map[string]interface{}{
		"categories": categories,
	})
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	category, err := h.categoryRepo.FindByIDWithProducts(r.Context(), id, 8)
	if err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}
	if category == nil {
		helpers.RespondErrorMessage(w, http.StatusNotFound, "Category not found")
		return
	}

	count, err := h.categoryRepo.CountProducts(r.Context(), id)
	if err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "", map[string]interface{}{
		"category":     category,
		"productCount": count,
	})
}
