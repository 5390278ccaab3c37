package repositories

import (
	"context"
	"errors"

	"github.com/gomartghana/gomart-api/app/apperrors"
	"github.com/gomartghana/gomart-api/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VendorSummary is a vendor row joined with its product count for the
// public listing.
type VendorSummary struct {
	models.Vendor
	ProductCount int64 `json:"productCount"`
}

type VendorFilter struct {
	IsVerified *bool
	Region     string
}

type VendorRepository interface {
	Create(ctx context.Context, vendor *models.Vendor) error
	FindByID(ctx context.Context, id string) (*models.Vendor, error)
	FindByIDWithProducts(ctx context.Context, id string, productLimit int) (*models.Vendor, error)
	FindByEmail(ctx context.Context, email string) (*models.Vendor, error)
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*models.Vendor, error)
	FindActive(ctx context.Context, filter VendorFilter) ([]VendorSummary, error)
	Update(ctx context.Context, vendor *models.Vendor) error
	SoftDeleteWithProducts(ctx context.Context, vendorID string) error
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	if vendor.ID == "" {
		vendor.ID = uuid.New().String()
	}

	err := r.db.WithContext(ctx).Create(vendor).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict("Vendor with this email or phone number already exists")
	}
	return err
}

func (r *vendorRepository) FindByID(ctx context.Context, id string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) FindByIDWithProducts(ctx context.Context, id string, productLimit int) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Limit(productLimit)
		}).
		First(&vendor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) FindByEmail(ctx context.Context, email string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&vendor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) FindByEmailOrPhone(ctx context.Context, email, phone string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.WithContext(ctx).Where("email = ? OR phone_number = ?", email, phone).First(&vendor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) FindActive(ctx context.Context, filter VendorFilter) ([]VendorSummary, error) {
	var vendors []VendorSummary

	query := r.db.WithContext(ctx).Model(&models.Vendor{}).
		Select("vendors.*, (SELECT COUNT(*) FROM products WHERE products.vendor_id = vendors.id) AS product_count").
		Where("is_active = ?", true)

	if filter.IsVerified != nil {
		query = query.Where("is_verified = ?", *filter.IsVerified)
	}
	if filter.Region != "" {
		query = query.Where("region = ?", filter.Region)
	}

	if err := query.Order("joined_date DESC").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *vendorRepository) Update(ctx context.Context, vendor *models.Vendor) error {
	return r.db.WithContext(ctx).Save(vendor).Error
}

// SoftDeleteWithProducts deactivates a vendor and every product it owns in
// one transaction. Either both writes commit or neither does.
func (r *vendorRepository) SoftDeleteWithProducts(ctx context.Context, vendorID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Vendor{}).Where("id = ?", vendorID).Update("is_active", false).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Product{}).Where("vendor_id = ?", vendorID).Update("is_active", false).Error; err != nil {
			return err
		}
		return nil
	})
}
