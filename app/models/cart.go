package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Cart struct {
	ID         string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CustomerID string `gorm:"size:36;not null;uniqueIndex" json:"customerId"`

	CartItems []CartItem `gorm:"foreignKey:CartID" json:"cartItems"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
