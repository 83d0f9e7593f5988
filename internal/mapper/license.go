package mapper

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"zimlicense-backend/internal/dto"
	"zimlicense-backend/internal/models"
)

// issueDateLayout is the calendar-date wire format (ISO, no time part).
const issueDateLayout = "2006-01-02"

func LicenseToDTO(l *models.License) dto.LicenseDTO {
	return dto.LicenseDTO{
		ID:          l.ID,
		CompanyName: l.CompanyName,
		LicenseType: string(l.LicenseType),
		IssueDate:   l.IssueDate.Format(issueDateLayout),
		GpsCoordinates: &dto.GpsCoordinates{
			Lat: ptr(l.Latitude),
			Lng: ptr(l.Longitude),
		},
		Email:               l.Email,
		ApplicationFeePaid:  ptr(l.ApplicationFeePaid.Round(2).InexactFloat64()),
		LicenseFeePaid:      ptr(l.LicenseFeePaid.Round(2).InexactFloat64()),
		ValidityPeriodYears: ptr(l.ValidityPeriodYears),
	}
}

func LicenseToEntity(d dto.LicenseDTO) (models.License, error) {
	issueDate, err := time.Parse(issueDateLayout, d.IssueDate)
	if err != nil {
		return models.License{}, errors.Wrap(err, "parse issue date")
	}
	return models.License{
		ID:                  d.ID,
		CompanyName:         d.CompanyName,
		LicenseType:         models.LicenseType(d.LicenseType),
		IssueDate:           issueDate,
		Latitude:            *d.GpsCoordinates.Lat,
		Longitude:           *d.GpsCoordinates.Lng,
		Email:               d.Email,
		ApplicationFeePaid:  decimal.NewFromFloat(*d.ApplicationFeePaid).Round(2),
		LicenseFeePaid:      decimal.NewFromFloat(*d.LicenseFeePaid).Round(2),
		ValidityPeriodYears: *d.ValidityPeriodYears,
	}, nil
}

// UpdateLicenseFromDTO overwrites the mutable fields of an existing
// entity, leaving identity and timestamps untouched.
func UpdateLicenseFromDTO(d dto.LicenseDTO, l *models.License) error {
	issueDate, err := time.Parse(issueDateLayout, d.IssueDate)
	if err != nil {
		return errors.Wrap(err, "parse issue date")
	}
	l.CompanyName = d.CompanyName
	l.LicenseType = models.LicenseType(d.LicenseType)
	l.IssueDate = issueDate
	l.Latitude = *d.GpsCoordinates.Lat
	l.Longitude = *d.GpsCoordinates.Lng
	l.Email = d.Email
	l.ApplicationFeePaid = decimal.NewFromFloat(*d.ApplicationFeePaid).Round(2)
	l.LicenseFeePaid = decimal.NewFromFloat(*d.LicenseFeePaid).Round(2)
	l.ValidityPeriodYears = *d.ValidityPeriodYears
	return nil
}
