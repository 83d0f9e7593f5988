package dto

// GpsCoordinates is the nested wire shape for a location. Storage keeps
// latitude and longitude as two flat columns.
type GpsCoordinates struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lng *float64 `json:"lng" validate:"required"`
}

type CompanyDTO struct {
	ID             string          `json:"id"`
	Name           string          `json:"name" validate:"required"`
	GpsCoordinates *GpsCoordinates `json:"gpsCoordinates" validate:"required"`
	Email          string          `json:"email" validate:"required,email"`
	ContactPerson  string          `json:"contactPerson" validate:"required"`
	Address        string          `json:"address" validate:"required,max=500"`
}
