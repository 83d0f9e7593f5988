package company

import (
	"zimlicense-backend/internal/apperr"
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

func (s *Service) GetAll() ([]dto.CompanyDTO, error) {
	companies, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toDTOs(companies), nil
}

func (s *Service) Search(name string) ([]dto.CompanyDTO, error) {
	companies, err := s.repo.SearchByName(name)
	if err != nil {
		return nil, err
	}
	return toDTOs(companies), nil
}

func (s *Service) GetByID(id string) (dto.CompanyDTO, error) {
	company, err := s.repo.FindByID(id)
	if err != nil {
		return dto.CompanyDTO{}, err
	}
	return mapper.CompanyToDTO(company), nil
}

func (s *Service) Create(d dto.CompanyDTO) (dto.CompanyDTO, error) {
	exists, err := s.repo.ExistsByName(d.Name)
	if err != nil {
		return dto.CompanyDTO{}, err
	}
	if exists {
		return dto.CompanyDTO{}, apperr.Conflictf("company with name already exists: %s", d.Name)
	}

	company := mapper.CompanyToEntity(d)
	company.ID = "" // the store mints the id, client-supplied ids are ignored
	if err := s.repo.Create(&company); err != nil {
		return dto.CompanyDTO{}, err
	}
	return mapper.CompanyToDTO(&company), nil
}

func (s *Service) Update(id string, d dto.CompanyDTO) (dto.CompanyDTO, error) {
	company, err := s.repo.FindByID(id)
	if err != nil {
		return dto.CompanyDTO{}, err
	}

	// A rename must not collide with another company's name.
	if company.Name != d.Name {
		exists, err := s.repo.ExistsByName(d.Name)
		if err != nil {
			return dto.CompanyDTO{}, err
		}
		if exists {
			return dto.CompanyDTO{}, apperr.Conflictf("company with name already exists: %s", d.Name)
		}
	}

	mapper.UpdateCompanyFromDTO(d, company)
	if err := s.repo.Save(company); err != nil {
		return dto.CompanyDTO{}, err
	}
	return mapper.CompanyToDTO(company), nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func toDTOs(companies []models.Company) []dto.CompanyDTO {
	res := make([]dto.CompanyDTO, 0, len(companies))
	for i := range companies {
		res = append(res, mapper.CompanyToDTO(&companies[i]))
	}
	return res
}
