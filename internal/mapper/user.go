package mapper

import (
	"zimlicense-backend/internal/dto"
	"zimlicense-backend/internal/models"
)

const timestampLayout = "2006-01-02T15:04:05"

// UserToDTO never exposes the password hash.
func UserToDTO(u *models.User) dto.UserDTO {
	return dto.UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        string(u.Role),
		CompanyName: u.CompanyName,
		PhoneNumber: u.PhoneNumber,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt.Format(timestampLayout),
		UpdatedAt:   u.UpdatedAt.Format(timestampLayout),
	}
}

// UserToEntity carries the identity and profile fields only; timestamps
// stay with the store.
func UserToEntity(d dto.UserDTO) models.User {
	return models.User{
		ID:          d.ID,
		Email:       d.Email,
		FullName:    d.FullName,
		Role:        models.UserRole(d.Role),
		CompanyName: d.CompanyName,
		PhoneNumber: d.PhoneNumber,
		IsActive:    d.IsActive,
	}
}
