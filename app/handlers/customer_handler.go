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
)

type CustomerHandler struct {
	authService  *services.AuthService
	customerRepo repositories.CustomerRepositoryImpl
	validate     *validator.Validate
}

func NewCustomerHandler(authService *services.AuthService, customerRepo repositories.CustomerRepositoryImpl) *CustomerHandler {
	return &CustomerHandler{
		authService:  authService,
		customerRepo: customerRepo,
		validate:     validator.New(),
	}
}

type registerCustomerRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
	Region      string `json:"region"`
	City        string `json:"city"`
	Address     string `json:"address"`
}

func (h *CustomerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerCustomerRequest
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

	customer, token, err := h.authService.RegisterCustomer(r.Context(), services.RegisterCustomerInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Region:      req.Region,
		City:        req.City,
		Address:     req.Address,
	})
	if err != nil {
		helpers.RespondError(w, err)
		return
	}

	helpers.RespondSuccess(w, http.StatusCreated, "Customer registered successfully", map[string]interface{}{
		"customer": customer,
		"token":    token,
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *CustomerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Please provide email and password")
		return
	}

	customer, token, err := h.authService.LoginCustomer(r.Context(), req.Email, req.Password)
	if err != nil {
		helpers.RespondError(w, err)
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "Login successful", map[string]interface{}{
		"customer": customer,
		"token":    token,
	})
}

func (h *CustomerHandler) Profile(w http.ResponseWriter, r *http.Request) {
	customer, ok := middlewares.CustomerFromContext(r)
	if !ok {
		helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, user not found")
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "", map[string]interface{}{
		"customer": customer,
	})
}

type updateProfileRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Region      string `json:"region"`
	City        string `json:"city"`
	Address     string `json:"address"`
}

func (h *CustomerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	customer, ok := middlewares.CustomerFromContext(r)
	if !ok {
		helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, user not found")
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.FirstName != "" {
		customer.FirstName = req.FirstName
	}
	if req.LastName != "" {
		customer.LastName = req.LastName
	}
	if req.PhoneNumber != "" {
		customer.PhoneNumber = req.PhoneNumber
	}
	if req.Region != "" {
		customer.Region = req.Region
	}
	if req.City != "" {
		customer.City = req.City
	}
	if req.Address != "" {
		customer.Address = req.Address
	}

	if err := h.customerRepo.Update(r.Context(), customer); err != nil {
		helpers.RespondError(w, apperrors.Internal(err))
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "Profile updated successfully", map[string]interface{}{
		"customer": customer,
	})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *CustomerHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	customer, ok := middlewares.CustomerFromContext(r)
	if !ok {
		helpers.RespondErrorMessage(w, http.StatusUnauthorized, "Not authorized, user not found")
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		helpers.RespondErrorMessage(w, http.StatusBadRequest, "Please provide current and new password")
		return
	}

	if err := h.authService.ChangeCustomerPassword(r.Context(), customer.ID, req.CurrentPassword, req.NewPassword); err != nil {
		helpers.RespondError(w, err)
		return
	}

	helpers.RespondSuccess(w, http.StatusOK, "Password changed successfully", nil)
}
