// Package mapper translates between persisted entities and their wire
// DTOs. GPS coordinates are nested on the wire but stored flat; monetary
// values are float64 on the wire and fixed-point (2 decimal places) in
// storage. Mappers assume their input already passed dto.Validate.
package mapper

import (
	"zimlicense-backend/internal/dto"
	"zimlicense-backend/internal/models"
)

func CompanyToDTO(c *models.Company) dto.CompanyDTO {
	return dto.CompanyDTO{
		ID:   c.ID,
		Name: c.Name,
		GpsCoordinates: &dto.GpsCoordinates{
			Lat: ptr(c.Latitude),
			Lng: ptr(c.Longitude),
		},
		Email:         c.Email,
		ContactPerson: c.ContactPerson,
		Address:       c.Address,
	}
}

func CompanyToEntity(d dto.CompanyDTO) models.Company {
	return models.Company{
		ID:            d.ID,
		Name:          d.Name,
		Latitude:      *d.GpsCoordinates.Lat,
		Longitude:     *d.GpsCoordinates.Lng,
		Email:         d.Email,
		ContactPerson: d.ContactPerson,
		Address:       d.Address,
	}
}

// UpdateCompanyFromDTO overwrites the mutable fields of an existing
// entity, leaving identity and timestamps untouched.
func UpdateCompanyFromDTO(d dto.CompanyDTO, c *models.Company) {
	c.Name = d.Name
	c.Latitude = *d.GpsCoordinates.Lat
	c.Longitude = *d.GpsCoordinates.Lng
	c.Email = d.Email
	c.ContactPerson = d.ContactPerson
	c.Address = d.Address
}

func ptr[T any](v T) *T {
	return &v
}
