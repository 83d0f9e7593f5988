package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLicense() LicenseDTO {
	lat, lng := -17.8, 31.0
	appFee, licFee := 1500.0, 8000.0
	years := 10
	return LicenseDTO{
		CompanyName:         "Acme",
		LicenseType:         "CTL",
		IssueDate:           "2024-03-15",
		GpsCoordinates:      &GpsCoordinates{Lat: &lat, Lng: &lng},
		Email:               "a@x.com",
		ApplicationFeePaid:  &appFee,
		LicenseFeePaid:      &licFee,
		ValidityPeriodYears: &years,
	}
}

func TestValidateAcceptsCompleteLicense(t *testing.T) {
	require.NoError(t, Validate(validLicense()))
}

func TestValidateRequiredFields(t *testing.T) {
	l := validLicense()
	l.CompanyName = ""
	err := Validate(l)
	require.Error(t, err)
	assert.Equal(t, "companyName is required", err.Error())

	l = validLicense()
	l.GpsCoordinates = nil
	err = Validate(l)
	require.Error(t, err)
	assert.Equal(t, "gpsCoordinates is required", err.Error())

	l = validLicense()
	l.GpsCoordinates.Lng = nil
	err = Validate(l)
	require.Error(t, err)
	assert.Equal(t, "lng is required", err.Error())
}

func TestValidateLicenseTypeEnum(t *testing.T) {
	l := validLicense()
	l.LicenseType = "ctl" // enum match is case-sensitive
	err := Validate(l)
	require.Error(t, err)
	assert.Equal(t, "licenseType must be one of: CTL, PRSL", err.Error())
}

func TestValidateFeesMustBePositive(t *testing.T) {
	l := validLicense()
	zero := 0.0
	l.ApplicationFeePaid = &zero
	err := Validate(l)
	require.Error(t, err)
	assert.Equal(t, "applicationFeePaid must be greater than 0", err.Error())

	l = validLicense()
	negative := -5.0
	l.LicenseFeePaid = &negative
	assert.Error(t, Validate(l))
}

func TestValidateIssueDateFormat(t *testing.T) {
	l := validLicense()
	l.IssueDate = "15-03-2024"
	err := Validate(l)
	require.Error(t, err)
	assert.Equal(t, "issueDate must be a date in YYYY-MM-DD format", err.Error())
}

func TestValidateCompanyDTO(t *testing.T) {
	lat, lng := -17.8, 31.0
	c := CompanyDTO{
		Name:           "Acme",
		GpsCoordinates: &GpsCoordinates{Lat: &lat, Lng: &lng},
		Email:          "a@x.com",
		ContactPerson:  "Jo",
		Address:        "1 Main St",
	}
	require.NoError(t, Validate(c))

	c.Email = "not-an-email"
	err := Validate(c)
	require.Error(t, err)
	assert.Equal(t, "email must be a valid email address", err.Error())
}

func TestValidateRegisterRequest(t *testing.T) {
	r := RegisterRequest{
		Email:       "u@x.com",
		Password:    "secret",
		FullName:    "U",
		Role:        "ADMIN",
		CompanyName: "Acme",
		PhoneNumber: "123",
	}
	require.NoError(t, Validate(r))

	r.Role = "ROOT"
	assert.Error(t, Validate(r))

	r.Role = "ADMIN"
	r.Password = "short"
	err := Validate(r)
	require.Error(t, err)
	assert.Equal(t, "password must be at least 6 characters", err.Error())
}
