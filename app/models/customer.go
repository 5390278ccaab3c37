package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	FirstName   string `gorm:"size:100;not null" json:"firstName"`
	LastName    string `gorm:"size:100;not null" json:"lastName"`
	Email       string `gorm:"size:100;not null;uniqueIndex" json:"email"`
	PhoneNumber string `gorm:"size:20;not null;uniqueIndex" json:"phoneNumber"`
	Password    string `gorm:"size:255;not null" json:"-"`
	Region      string `gorm:"size:100;default:'Greater Accra'" json:"region"`
	City        string `gorm:"size:100;default:'Accra'" json:"city"`
	Address     string `gorm:"type:text" json:"address"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	Cart    *Cart    `gorm:"foreignKey:CustomerID" json:"-"`
	Orders  []Order  `gorm:"foreignKey:CustomerID" json:"-"`
	Reviews []Review `gorm:"foreignKey:CustomerID" json:"-"`

	DateJoined time.Time `gorm:"autoCreateTime" json:"dateJoined"`
	UpdatedAt  time.Time `json:"-"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
