package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gomartghana/gomart-api/app/apperrors"
	"github.com/gomartghana/gomart-api/app/helpers"
	"github.com/gomartghana/gomart-api/app/middlewares"
	"github.com/gomartghana/gomart-api/app/repositories"
	"github.com/gomartghana/gomart-api/app/services"
	"github.com/gorilla/mux"
)

type VendorHandler struct {
	authService   *services.AuthService
	vendorService *services.VendorService
	vendorRepo    repositories.VendorRepository
	validate      *validator.Validate
}

func NewVendorHandler(
	authService *services.AuthService,
	vendorService *services.VendorService,
	vendorRepo repositories.VendorRepository,
) *VendorHandler {
	return &VendorHandler{
		authService:   authService,
		vendorService: vendorService,
		vendorRepo:    vendorRepo,
		validate:      validator.New(),
	}
}

type registerVendorRequest struct {
	VendorName      string `json:"vendorName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	PhoneNumber     string `json:"phoneNumber" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	BusinessAddress string `json:"businessAddress" validate:"required"`
	Region          string `json:"region"`
	City            string `json:"city"`
	BusinessLicense string `json:"businessLicense"`
	TaxID           string `json:"taxId"`
}

func (h *VendorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerVendorRequest
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

	vendor, token, err := h.authService.RegisterVendor(r.Context(), services.RegisterVendorInput{
		VendorName:      req.VendorName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Password:        req.Password,
		BusinessAddress: req.BusinessAddress,
		Region:          req.Region,
		City:            req.City,
		BusinessLicense: req.BusinessLicense,
		TaxID:           req.TaxID,
	})
	if err != nil {
		helpers.RespondError(w, err)
		return
	}

	helpers.RespondSuccess(w, http.StatusCreated, "Vendor registered successfully", map[string]interface{}{
		"vendor": vendor,
		"token":  token,
	})
}

func (h *VendorHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Please provide email and password")
		return
	}

	vendor, token, err := h.authService.LoginVendor(r.Context(), req.Email, req.Password)
	if err != nil {
		helpers.RespondError(w, err)
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "Login successful", map[string]interface{}{
		"vendor": vendor,
		"token":  token,
	})
}

func (h *VendorHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repositories.VendorFilter{
		Region: r.URL.Query().Get("region"),
	}
	if v := r.URL.Query().Get("isVerified"); v != "" {
		verified := v == "true"
		filter.IsVerified = &verified
	}

	vendors, err := h.vendorRepo.FindActive(r.Context(), filter)
	if err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "", map[string]interface{}{
		"vendors": vendors,
	})
}

func (h *VendorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	vendor, err := h.vendorRepo.FindByIDWithProducts(r.Context(), id, 10)
	if err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}
	if vendor == nil {
		helpers.RespondErrorMessage(w, http.StatusNotFound, "Vendor not found")
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "", map[string]interface{}{
		"vendor": vendor,
	})
}

type updateVendorRequest struct {
	VendorName      string `json:"vendorName"`
	PhoneNumber     string `json:"phoneNumber"`
	BusinessAddress string `json:"businessAddress"`
	Region          string `json:"region"`
	City            string `json:"city"`
	BusinessLicense string `json:"businessLicense"`
	TaxID           string `json:"taxId"`
}

func (h *VendorHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	vendor, ok := middlewares.VendorFromContext(r)
	if !ok {
		helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, vendor not found")
		return
	}

	var req updateVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.vendorService.UpdateProfile(r.Context(), vendor, services.UpdateVendorInput{
		VendorName:      req.VendorName,
		PhoneNumber:     req.PhoneNumber,
		BusinessAddress: req.BusinessAddress,
		Region:          req.Region,
		City:            req.City,
		BusinessLicense: req.BusinessLicense,
		TaxID:           req.TaxID,
	})
	if err != nil {
		helpers.RespondError(w, err)
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "Vendor updated successfully", map[string]interface{}{
		"vendor": updated,
	})
}

func (h *VendorHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	vendor, ok := middlewares.VendorFromContext(r)
	if !ok {
		helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, vendor not found")
		return
	}

	if err := h.vendorService.Deactivate(r.Context(), vendor.ID); err != nil {
		helpers.RespondError(w, err)
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "Vendor deactivated successfully", nil)
}
