package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gomartghana/gomart-api/app/apperrors"
	"github.com/gomartghana/gomart-api/app/helpers"
	"github.com/gomartghana/gomart-api/app/middlewares"
	"github.com/gomartghana/gomart-api/app/models"
	"github.com/gomartghana/gomart-api/app/repositories"
	"github.com/gomartghana/gomart-api/app/utils/format"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepository
	validate     *validator.Validate
}

func NewProductHandler(productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepository) *ProductHandler {
	return &ProductHandler{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		validate:     validator.New(),
	}
}

// productView is a product decorated with its aggregated rating. The raw
// reviews are stripped from listing responses.
type productView struct {
	models.Product
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
	DisplayPrice  string  `json:"displayPrice"`
}

func newProductView(p models.Product) productView {
	total := 0
	for _, review := range p.Reviews {
		total += review.Rating
	}

	avg := 0.0
	if len(p.Reviews) > 0 {
		avg = math.Round(float64(total)/float64(len(p.Reviews))*10) / 10
	}

	view := productView{
		Product:       p,
		AverageRating: avg,
		ReviewCount:   len(p.Reviews),
		DisplayPrice:  format.Cedi(p.Price),
	}
	view.Reviews = nil
	return view
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil || limit < 1 {
		limit = 12
	}

	filter := repositories.ProductFilter{
		CategoryID: query.Get("category"),
		VendorID:   query.Get("vendor"),
		Search:     query.Get("search"),
		SortBy:     query.Get("sortBy"),
		SortOrder:  query.Get("sortOrder"),
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}
	if v := query.Get("minPrice"); v != "" {
		if min, err := decimal.NewFromString(v); err == nil {
			filter.MinPrice = &min
		}
	}
	if v := query.Get("maxPrice"); v != "" {
		if max, err := decimal.NewFromString(v); err == nil {
			filter.MaxPrice = &max
		}
	}

	products, total, err := h.productRepo.FindPaginated(r.Context(), filter)
	if err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	helpers.RespondSuccess(w, http.StatusOK, "", map[string]interface{}{
		"products": views,
		"pagination": map[string]interface{}{
			"currentPage":   page,
			"totalPages":    totalPages,
			"totalProducts": total,
			"hasNext":       filter.Offset+limit < int(total),
			"hasPrev":       page > 1,
		},
	})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.FindByIDWithDetails(r.Context(), id)
	if err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}
	if product == nil {
		helpers.RespondErrorMessage(w, http.StatusNotFound, "Product not found")
		return
	}

	view := newProductView(*product)
	view.Reviews = product.Reviews

	helpers.RespondSuccess(w, http.StatusOK, "", map[string]interface{}{
		"product": view,
	})
}

type createProductRequest struct {
	ProductName   string `json:"productName" validate:"required"`
	Description   string `json:"description" validate:"required"`
	Price         string `json:"price" validate:"required"`
	StockQuantity *int   `json:"stockQuantity" validate:"required"`
	CategoryID    string `json:"categoryId" validate:"required"`
	Sku           string `json:"sku"`
	Brand         string `json:"brand"`
	ImageURL      string `json:"imageURL"`
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	vendor, ok := middlewares.VendorFromContext(r)
	if !ok {
		helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, vendor not found")
		return
	}

	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			helpers.RespondErrorMessage(w, http.StatusBadRequest, helpers.FormatValidationErrors(verrs))
			return
		}
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Price must be a non-negative number")
		return
	}
	if *req.StockQuantity < 0 {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Stock quantity must be a non-negative integer")
		return
	}

	category, err := h.categoryRepo.FindByID(r.Context(), req.CategoryID)
	if err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}
	if category == nil {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	product := &models.Product{
		VendorID:      vendor.ID,
		CategoryID:    req.CategoryID,
		ProductName:   req.ProductName,
		Description:   req.Description,
		Price:         price,
		StockQuantity: *req.StockQuantity,
		Sku:           req.Sku,
		Brand:         req.Brand,
		ImageURL:      req.ImageURL,
		IsActive:      true,
	}

	if err := h.productRepo.Create(r.Context(), product); err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}

	helpers.RespondSuccess(w, http.StatusCreated, "Product created successfully", map[string]interface{}{
		"product": product,
	})
}

type updateProductRequest struct {
	ProductName   string `json:"productName"`
	Description   string `json:"description"`
	Price         string `json:"price"`
	StockQuantity *int   `json:"stockQuantity"`
	CategoryID    string `json:"categoryId"`
	Sku           string `json:"sku"`
	Brand         string `json:"brand"`
	ImageURL      string `json:"imageURL"`
	IsActive      *bool  `json:"isActive"`
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	vendor, ok := middlewares.VendorFromContext(r)
	if !ok {
		helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, vendor not found")
		return
	}
	id := mux.Vars(r)["id"]

	// Existence is confirmed before ownership, so probing a missing id
	// yields NotFound rather than Forbidden.
	product, err := h.productRepo.FindByID(r.Context(), id)
	if err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}
	if product == nil {
		helpers.RespondErrorMessage(w, http.StatusNotFound, "Product not found")
		return
	}
	if product.VendorID != vendor.ID {
		helpers.RespondErrorMessage(w, http.StatusForbidden, "Not authorized to update this product")
		return
	}

	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ProductName != "" {
		product.ProductName = req.ProductName
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price != "" {
		price, err := decimal.NewFromString(req.Price)
		if err != nil || price.IsNegative() {
			helpers.RespondErrorMessage(w, http.StatusBadRequest, "Price must be a non-negative number")
			return
		}
		product.Price = price
	}
	if req.StockQuantity != nil {
		if *req.StockQuantity < 0 {
			helpers.RespondErrorMessage(w, http.StatusBadRequest, "Stock quantity must be a non-negative integer")
			return
		}
		product.StockQuantity = *req.StockQuantity
	}
	if req.CategoryID != "" {
		category, err := h.categoryRepo.FindByID(r.Context(), req.CategoryID)
		if err != nil {
			helpers.RespondError(w, apperrors.Internal(err))
			return
		}
		if category == nil {
			helpers.RespondErrorMessage(w, http.StatusBadRequest, "Invalid category ID")
			return
		}
		product.CategoryID = req.CategoryID
	}
	if req.Sku != "" {
		product.Sku = req.Sku
	}
	if req.Brand != "" {
		product.Brand = req.Brand
	}
	if req.ImageURL != "" {
		product.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := h.productRepo.Update(r.Context(), product); err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "Product updated successfully", map[string]interface{}{
		"product": product,
	})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vendor, ok := middlewares.VendorFromContext(r)
	if !ok {
		helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, vendor not found")
		return
	}
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.FindByID(r.Context(), id)
	if err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}
	if product == nil {
		helpers.RespondErrorMessage(w, http.StatusNotFound, "Product not found")
		return
	}
	if product.VendorID != vendor.ID {
		helpers.RespondErrorMessage(w, http.StatusForbidden, "Not authorized to delete this product")
		return
	}

	if err := h.productRepo.Delete(r.Context(), id); err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "Product deleted successfully", nil)
}
