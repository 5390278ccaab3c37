package services

import (
	"context"

	"github.com/gomartghana/gomart-api/app/apperrors"
	"github.com/gomartghana/gomart-api/app/models"
	"github.com/gomartghana/gomart-api/app/repositories"
	"github.com/rs/zerolog"
)

type VendorService struct {
	vendorRepo repositories.VendorRepository
	logger     zerolog.Logger
}

func NewVendorService(vendorRepo repositories.VendorRepository, logger zerolog.Logger) *VendorService {
	return &VendorService{vendorRepo: vendorRepo, logger: logger}
}

type UpdateVendorInput struct {
	VendorName      string
	PhoneNumber     string
	BusinessAddress string
	Region          string
	City            string
	BusinessLicense string
	TaxID           string
}

func (s *VendorService) UpdateProfile(ctx context.Context, vendor *models.Vendor, input UpdateVendorInput) (*models.Vendor, error) {
	if input.VendorName != "" {
		vendor.VendorName = input.VendorName
	}
	if input.PhoneNumber != "" {
		vendor.PhoneNumber = input.PhoneNumber
	}
	if input.BusinessAddress != "" {
		vendor.BusinessAddress = input.BusinessAddress
	}
	if input.Region != "" {
		vendor.Region = input.Region
	}
	if input.City != "" {
		vendor.City = input.City
	}
	if input.BusinessLicense != "" {
		vendor.BusinessLicense = input.BusinessLicense
	}
	if input.TaxID != "" {
		vendor.TaxID = input.TaxID
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, apperrors.Internal(err)
	}
	return vendor, nil
}

// Deactivate soft-deletes the vendor: the vendor row and every product it
// owns flip to inactive in one transaction. Partial application is never
// visible.
func (s *VendorService) Deactivate(ctx context.Context, vendorID string) error {
	if err := s.vendorRepo.SoftDeleteWithProducts(ctx, vendorID); err != nil {
		return apperrors.Internal(err)
	}
	s.logger.Info().Str("vendor_id", vendorID).Msg("vendor deactivated with products")
	return nil
}
