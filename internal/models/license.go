package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type LicenseType string

const (
	// LicenseTypeCTL is a Cellular Telecommunications License.
	LicenseTypeCTL LicenseType = "CTL"
	// LicenseTypePRSL is a Public Radio Station License.
	LicenseTypePRSL LicenseType = "PRSL"
)

// ParseLicenseType validates a wire value against the two-value enum.
// The match is exact and case-sensitive.
func ParseLicenseType(s string) (LicenseType, bool) {
	switch LicenseType(s) {
	case LicenseTypeCTL, LicenseTypePRSL:
		return LicenseType(s), true
	}
	return "", false
}

type License struct {
	ID                  string          `gorm:"primaryKey;size:36"`
	CompanyName         string          `gorm:"size:255;not null"`
	LicenseType         LicenseType     `gorm:"size:10;not null"`
	IssueDate           time.Time       `gorm:"type:date;not null"`
	Latitude            float64         `gorm:"not null"`
	Longitude           float64         `gorm:"not null"`
	Email               string          `gorm:"size:255;not null"`
	ApplicationFeePaid  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	LicenseFeePaid      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ValidityPeriodYears int             `gorm:"not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (l *License) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
