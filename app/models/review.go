package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review carries a composite unique index so a customer can review a given
// product at most once; the constraint backstops the handler-level check.
type Review struct {
	ID         string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CustomerID string    `gorm:"size:36;not null;uniqueIndex:idx_customer_product" json:"customerId"`
	Customer   *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	ProductID  string    `gorm:"size:36;not null;uniqueIndex:idx_customer_product" json:"productId"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}
