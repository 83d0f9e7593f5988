package license

import (
	"time"

	"zimlicense-backend/internal/dto"
	"zimlicense-backend/internal/mapper"
	"zimlicense-backend/internal/models"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetAll() ([]dto.LicenseDTO, error) {
	licenses, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toDTOs(licenses), nil
}

func (s *Service) GetByType(t models.LicenseType) ([]dto.LicenseDTO, error) {
	licenses, err := s.repo.ListByType(t)
	if err != nil {
		return nil, err
	}
	return toDTOs(licenses), nil
}

func (s *Service) SearchByCompanyName(name string) ([]dto.LicenseDTO, error) {
	licenses, err := s.repo.SearchByCompanyName(name)
	if err != nil {
		return nil, err
	}
	return toDTOs(licenses), nil
}

func (s *Service) GetByIssueDateRange(from, to time.Time) ([]dto.LicenseDTO, error) {
	licenses, err := s.repo.ListByIssueDateRange(from, to)
	if err != nil {
		return nil, err
	}
	return toDTOs(licenses), nil
}

func (s *Service) GetByID(id string) (dto.LicenseDTO, error) {
	license, err := s.repo.FindByID(id)
	if err != nil {
		return dto.LicenseDTO{}, err
	}
	return mapper.LicenseToDTO(license), nil
}

// Create always inserts a new record; licenses carry no uniqueness
// constraint beyond the generated id.
func (s *Service) Create(d dto.LicenseDTO) (dto.LicenseDTO, error) {
	license, err := mapper.LicenseToEntity(d)
	if err != nil {
		return dto.LicenseDTO{}, err
	}
	license.ID = "" // the store mints the id, client-supplied ids are ignored
	if err := s.repo.Create(&license); err != nil {
		return dto.LicenseDTO{}, err
	}
	return mapper.LicenseToDTO(&license), nil
}

func (s *Service) Update(id string, d dto.LicenseDTO) (dto.LicenseDTO, error) {
	license, err := s.repo.FindByID(id)
	if err != nil {
		return dto.LicenseDTO{}, err
	}
	if err := mapper.UpdateLicenseFromDTO(d, license); err != nil {
		return dto.LicenseDTO{}, err
	}
	if err := s.repo.Save(license); err != nil {
		return dto.LicenseDTO{}, err
	}
	return mapper.LicenseToDTO(license), nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func toDTOs(licenses []models.License) []dto.LicenseDTO {
	res := make([]dto.LicenseDTO, 0, len(licenses))
	for i := range licenses {
		res = append(res, mapper.LicenseToDTO(&licenses[i]))
	}
	return res
}
