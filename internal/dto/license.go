package dto

type LicenseDTO struct {
	ID                  string          `json:"id"`
	CompanyName         string          `json:"companyName" validate:"required"`
	LicenseType         string          `json:"licenseType" validate:"required,oneof=CTL PRSL"`
	IssueDate           string          `json:"issueDate" validate:"required,datetime=2006-01-02"`
	GpsCoordinates      *GpsCoordinates `json:"gpsCoordinates" validate:"required"`
	Email               string          `json:"email" validate:"required,email"`
	ApplicationFeePaid  *float64        `json:"applicationFeePaid" validate:"required,gt=0"`
	LicenseFeePaid      *float64        `json:"licenseFeePaid" validate:"required,gt=0"`
	ValidityPeriodYears *int            `json:"validityPeriodYears" validate:"required,gt=0"`
}
