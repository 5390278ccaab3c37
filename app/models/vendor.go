package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vendor struct {
	ID              string  `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	VendorName      string  `gorm:"size:255;not null" json:"vendorName"`
	Email           string  `gorm:"size:100;not null;uniqueIndex" json:"email"`
	PhoneNumber     string  `gorm:"size:20;not null;uniqueIndex" json:"phoneNumber"`
	Password        string  `gorm:"size:255;not null" json:"-"`
	BusinessAddress string  `gorm:"type:text" json:"businessAddress"`
	Region          string  `gorm:"size:100;default:'Greater Accra'" json:"region"`
	City            string  `gorm:"size:100;default:'Accra'" json:"city"`
	BusinessLicense string  `gorm:"size:100" json:"businessLicense"`
	TaxID           string  `gorm:"size:100" json:"taxId"`
	IsVerified      bool    `gorm:"default:false" json:"isVerified"`
	IsActive        bool    `gorm:"default:true" json:"isActive"`
	Rating          float64 `gorm:"default:0" json:"rating"`

	Products []Product `gorm:"foreignKey:VendorID" json:"-"`

	JoinedDate time.Time `gorm:"autoCreateTime" json:"joinedDate"`
	UpdatedAt  time.Time `json:"-"`
}

func (v *Vendor) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return
}
