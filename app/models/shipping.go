package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Shipping struct {
	ID             string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID        string          `gorm:"size:36;not null;uniqueIndex" json:"orderId"`
	Region         string          `gorm:"size:100" json:"region"`
	City           string          `gorm:"size:100" json:"city"`
	Address        string          `gorm:"type:text" json:"address"`
	DeliveryFee    decimal.Decimal `gorm:"type:decimal(16,2)" json:"deliveryFee"`
	Status         string          `gorm:"size:50;default:'pending'" json:"status"`
	TrackingNumber string          `gorm:"size:100" json:"trackingNumber"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Shipping) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
