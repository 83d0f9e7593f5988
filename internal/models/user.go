package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleOfficer UserRole = "OFFICER"
)

type User struct {
	ID           string   `gorm:"primaryKey;size:36"`
	Email        string   `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string   `gorm:"size:255;not null"`
	FullName     string   `gorm:"size:255;not null"`
	Role         UserRole `gorm:"size:20;not null"`
	CompanyName  string   `gorm:"size:255"`
	PhoneNumber  string   `gorm:"size:50"`
	IsActive     bool     `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
