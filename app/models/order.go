package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID          string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CustomerID  string          `gorm:"size:36;not null;index" json:"customerId"`
	OrderDate   time.Time       `gorm:"autoCreateTime" json:"orderDate"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"totalAmount"`
	Status      string          `gorm:"size:50;default:'pending'" json:"status"`

	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"orderItems,omitempty"`
	Payment    *Payment    `gorm:"foreignKey:OrderID" json:"payment,omitempty"`
	Shipping   *Shipping   `gorm:"foreignKey:OrderID" json:"shipping,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}
