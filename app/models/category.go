package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID           string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CategoryName string `gorm:"size:100;not null;uniqueIndex" json:"categoryName"`
	Description  string `gorm:"type:text" json:"description"`
	ImageURL     string `gorm:"size:500" json:"imageURL"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
