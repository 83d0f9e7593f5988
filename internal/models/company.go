package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Company struct {
	ID            string  `gorm:"primaryKey;size:36"`
	Name          string  `gorm:"size:255;not null;uniqueIndex"`
	Latitude      float64 `gorm:"not null"`
	Longitude     float64 `gorm:"not null"`
	Email         string  `gorm:"size:255;not null"`
	ContactPerson string  `gorm:"size:255;not null"`
	Address       string  `gorm:"size:500;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
