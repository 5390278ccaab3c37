package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gomartghana/gomart-api/app/apperrors"
	"github.com/gomartghana/gomart-api/app/helpers"
	"github.com/gomartghana/gomart-api/app/models"
	"github.com/gomartghana/gomart-api/app/repositories"
	"github.com/rs/zerolog"
)

const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"

	tokenLifetime = 30 * 24 * time.Hour
)

// TokenClaims binds an identity id and a role tag to a bounded validity
// window. Tokens are self-contained; nothing is stored server-side.
type TokenClaims struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	jwt.RegisteredClaims
}

type AuthService struct {
	customerRepo repositories.CustomerRepositoryImpl
	vendorRepo   repositories.VendorRepository
	cartRepo     repositories.CartRepository
	secretKey    []byte
	logger       zerolog.Logger
}

func NewAuthService(
	customerRepo repositories.CustomerRepositoryImpl,
	vendorRepo repositories.VendorRepository,
	cartRepo repositories.CartRepository,
	jwtSecret string,
	logger zerolog.Logger,
) *AuthService {
	if jwtSecret == "" {
		logger.Warn().Msg("JWT_SECRET not set, tokens will be signed with an empty key")
	}
	return &AuthService{
		customerRepo: customerRepo,
		vendorRepo:   vendorRepo,
		cartRepo:     cartRepo,
		secretKey:    []byte(jwtSecret),
		logger:       logger,
	}
}

type RegisterCustomerInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
	Region      string
	City        string
	Address     string
}

// RegisterCustomer creates a customer account, its cart, and a session
// token. The plaintext password is hashed before it reaches storage and is
// never logged.
func (s *AuthService) RegisterCustomer(ctx context.Context, input RegisterCustomerInput) (*models.Customer, string, error) {
	email := helpers.NormalizeEmail(input.Email)

	existing, err := s.customerRepo.FindByEmailOrPhone(ctx, email, input.PhoneNumber)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}
	if existing != nil {
		return nil, "", apperrors.Conflict("Customer with this email or phone number already exists")
	}

	hash := helpers.HashPassword(input.Password)
	if hash == "" {
		return nil, "", apperrors.Internal(nil)
	}

	customer := &models.Customer{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       email,
		PhoneNumber: input.PhoneNumber,
		Password:    hash,
		Region:      defaultString(input.Region, "Greater Accra"),
		City:        defaultString(input.City, "Accra"),
		Address:     input.Address,
		IsActive:    true,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, "", err
	}

	if err := s.cartRepo.Create(ctx, &models.Cart{CustomerID: customer.ID}); err != nil {
		return nil, "", apperrors.Internal(err)
	}

	token, err := s.IssueToken(customer.ID, RoleCustomer)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}

	s.logger.Info().Str("customer_id", customer.ID).Msg("customer registered")
	return customer, token, nil
}

type RegisterVendorInput struct {
	VendorName      string
	Email           string
	PhoneNumber     string
	Password        string
	BusinessAddress string
	Region          string
	City            string
	BusinessLicense string
	TaxID           string
}

func (s *AuthService) RegisterVendor(ctx context.Context, input RegisterVendorInput) (*models.Vendor, string, error) {
	email := helpers.NormalizeEmail(input.Email)

	existing, err := s.vendorRepo.FindByEmailOrPhone(ctx, email, input.PhoneNumber)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}
	if existing != nil {
		return nil, "", apperrors.Conflict("Vendor with this email or phone number already exists")
	}

	hash := helpers.HashPassword(input.Password)
	if hash == "" {
		return nil, "", apperrors.Internal(nil)
	}

	vendor := &models.Vendor{
		VendorName:      input.VendorName,
		Email:           email,
		PhoneNumber:     input.PhoneNumber,
		Password:        hash,
		BusinessAddress: input.BusinessAddress,
		Region:          defaultString(input.Region, "Greater Accra"),
		City:            defaultString(input.City, "Accra"),
		BusinessLicense: input.BusinessLicense,
		TaxID:           input.TaxID,
		IsVerified:      false,
		IsActive:        true,
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(vendor.ID, RoleVendor)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}

	s.logger.Info().Str("vendor_id", vendor.ID).Msg("vendor registered")
	return vendor, token, nil
}

// LoginCustomer authenticates an (email, password) pair. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) LoginCustomer(ctx context.Context, email, password string) (*models.Customer, string, error) {
	customer, err := s.customerRepo.FindByEmail(ctx, helpers.NormalizeEmail(email))
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}
	if customer == nil {
		return nil, "", apperrors.Unauthorized("Invalid credentials")
	}

	if !helpers.PasswordCompare(customer.Password, []byte(password)) {
		return nil, "", apperrors.Unauthorized("Invalid credentials")
	}

	if !customer.IsActive {
		return nil, "", apperrors.Unauthorized("Account is inactive, please contact support")
	}

	token, err := s.IssueToken(customer.ID, RoleCustomer)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}
	return customer, token, nil
}

// LoginVendor works like LoginCustomer. Verification is not required to
// sign in; it gates vendor-only actions at the middleware instead.
func (s *AuthService) LoginVendor(ctx context.Context, email, password string) (*models.Vendor, string, error) {
	vendor, err := s.vendorRepo.FindByEmail(ctx, helpers.NormalizeEmail(email))
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}
	if vendor == nil {
		return nil, "", apperrors.Unauthorized("Invalid credentials")
	}

	if !helpers.PasswordCompare(vendor.Password, []byte(password)) {
		return nil, "", apperrors.Unauthorized("Invalid credentials")
	}

	if !vendor.IsActive {
		return nil, "", apperrors.Unauthorized("Account is inactive, please contact support")
	}

	token, err := s.IssueToken(vendor.ID, RoleVendor)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}
	return vendor, token, nil
}

func (s *AuthService) ChangeCustomerPassword(ctx context.Context, customerID, currentPassword, newPassword string) error {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if customer == nil {
		return apperrors.Unauthorized("Not authorized, user not found")
	}

	if !helpers.PasswordCompare(customer.Password, []byte(currentPassword)) {
		return apperrors.BadRequest("Current password is incorrect")
	}

	hash := helpers.HashPassword(newPassword)
	if hash == "" {
		return apperrors.Internal(nil)
	}
	if err := s.customerRepo.UpdatePassword(ctx, customerID, hash); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// IssueToken signs an HS256 token embedding the identity id, its role tag,
// and a 30-day expiry.
func (s *AuthService) IssueToken(identityID, role string) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		ID:   identityID,
		Type: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// VerifyToken checks signature and expiry only. Whether the referenced
// account still exists and is active is the access gate's concern.
func (s *AuthService) VerifyToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Unauthorized("Not authorized, token failed")
	}

	return claims, nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
