package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

type Payment struct {
	ID                   string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID              string          `gorm:"size:36;not null;uniqueIndex" json:"orderId"`
	Amount               decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"amount"`
	PaymentMethod        string          `gorm:"size:50;not null" json:"paymentMethod"`
	TransactionReference string          `gorm:"size:255;index" json:"transactionReference"`
	Status               string          `gorm:"size:50;default:'pending'" json:"status"`
	PaymentDate          time.Time       `gorm:"autoCreateTime" json:"paymentDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

// IsTerminal reports whether the payment has left the pending state. A
// terminal payment is never transitioned again.
func (p *Payment) IsTerminal() bool {
	return p.Status == PaymentStatusCompleted || p.Status == PaymentStatusFailed
}
