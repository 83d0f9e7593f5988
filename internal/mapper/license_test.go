package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zimlicense-backend/internal/dto"
	"zimlicense-backend/internal/models"
)

func licenseDTO() dto.LicenseDTO {
	return dto.LicenseDTO{
		ID:          "c1f3a2b4-d5e6-4f70-8a91-b2c3d4e5f607",
		CompanyName: "Acme",
		LicenseType: "CTL",
		IssueDate:   "2024-03-15",
		GpsCoordinates: &dto.GpsCoordinates{
			Lat: ptr(-17.8),
			Lng: ptr(31.0),
		},
		Email:               "a@x.com",
		ApplicationFeePaid:  ptr(150000.50),
		LicenseFeePaid:      ptr(800000.25),
		ValidityPeriodYears: ptr(15),
	}
}

func TestLicenseRoundTrip(t *testing.T) {
	in := licenseDTO()

	entity, err := LicenseToEntity(in)
	require.NoError(t, err)
	out := LicenseToDTO(&entity)

	assert.Equal(t, in, out)
}

func TestLicenseFeesRoundToStoredScale(t *testing.T) {
	in := licenseDTO()
	in.ApplicationFeePaid = ptr(100.555)

	entity, err := LicenseToEntity(in)
	require.NoError(t, err)

	assert.Equal(t, "100.56", entity.ApplicationFeePaid.String())
	assert.Equal(t, 100.56, *LicenseToDTO(&entity).ApplicationFeePaid)
}

func TestLicenseToEntityParsesIssueDate(t *testing.T) {
	entity, err := LicenseToEntity(licenseDTO())
	require.NoError(t, err)

	assert.Equal(t, 2024, entity.IssueDate.Year())
	assert.Equal(t, models.LicenseTypeCTL, entity.LicenseType)
}

func TestLicenseToEntityRejectsBadDate(t *testing.T) {
	in := licenseDTO()
	in.IssueDate = "15/03/2024"

	_, err := LicenseToEntity(in)
	assert.Error(t, err)
}

func TestUpdateLicenseFromDTOKeepsIdentity(t *testing.T) {
	entity, err := LicenseToEntity(licenseDTO())
	require.NoError(t, err)

	updated := licenseDTO()
	updated.ID = "other-id"
	updated.LicenseType = "PRSL"
	updated.LicenseFeePaid = ptr(900000.00)

	require.NoError(t, UpdateLicenseFromDTO(updated, &entity))

	assert.Equal(t, "c1f3a2b4-d5e6-4f70-8a91-b2c3d4e5f607", entity.ID)
	assert.Equal(t, models.LicenseTypePRSL, entity.LicenseType)
	assert.Equal(t, "900000", entity.LicenseFeePaid.String())
}
