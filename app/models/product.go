package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID            string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	VendorID      string          `gorm:"size:36;not null;index" json:"vendorId"`
	Vendor        *Vendor         `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	CategoryID    string          `gorm:"size:36;not null;index" json:"categoryId"`
	Category      *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ProductName   string          `gorm:"size:255;not null" json:"productName"`
	Description   string          `gorm:"type:text" json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	StockQuantity int             `gorm:"not null" json:"stockQuantity"`
	Sku           string          `gorm:"size:100" json:"sku"`
	Brand         string          `gorm:"size:100" json:"brand"`
	ImageURL      string          `gorm:"size:500" json:"imageURL"`
	IsActive      bool            `gorm:"default:true" json:"isActive"`

	Reviews []Review `gorm:"foreignKey:ProductID" json:"reviews,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
