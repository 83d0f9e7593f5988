package license

import (
	"time"

	"github.com/go-faster/errors"
	"gorm.io/gorm"

	"zimlicense-backend/internal/apperr"
	"zimlicense-backend/internal/models"
)

type Repository interface {
	ListAll() ([]models.License, error)
	ListByType(t models.LicenseType) ([]models.License, error)
	SearchByCompanyName(name string) ([]models.License, error)
	ListByIssueDateRange(from, to time.Time) ([]models.License, error)
	FindByID(id string) (*models.License, error)
	Create(l *models.License) error
	Save(l *models.License) error
	Delete(id string) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) ListAll() ([]models.License, error) {
	var licenses []models.License
	if err := r.db.Find(&licenses).Error; err != nil {
		return nil, errors.Wrap(err, "list licenses")
	}
	return licenses, nil
}

func (r *gormRepository) ListByType(t models.LicenseType) ([]models.License, error) {
	var licenses []models.License
	if err := r.db.
		Where("license_type = ?", t).
		Find(&licenses).Error; err != nil {
		return nil, errors.Wrap(err, "list licenses by type")
	}
	return licenses, nil
}

func (r *gormRepository) SearchByCompanyName(name string) ([]models.License, error) {
	var licenses []models.License
	if err := r.db.
		Where("LOWER(company_name) LIKE LOWER(?)", "%"+name+"%").
		Find(&licenses).Error; err != nil {
		return nil, errors.Wrap(err, "search licenses by company name")
	}
	return licenses, nil
}

func (r *gormRepository) ListByIssueDateRange(from, to time.Time) ([]models.License, error) {
	var licenses []models.License
	if err := r.db.
		Where("issue_date BETWEEN ? AND ?", from, to).
		Find(&licenses).Error; err != nil {
		return nil, errors.Wrap(err, "list licenses by issue date range")
	}
	return licenses, nil
}

func (r *gormRepository) FindByID(id string) (*models.License, error) {
	var license models.License
	if err := r.db.First(&license, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("license not found with id: %s", id)
		}
		return nil, errors.Wrap(err, "find license")
	}
	return &license, nil
}

func (r *gormRepository) Create(l *models.License) error {
	if err := r.db.Create(l).Error; err != nil {
		return errors.Wrap(err, "create license")
	}
	return nil
}

func (r *gormRepository) Save(l *models.License) error {
	if err := r.db.Save(l).Error; err != nil {
		return errors.Wrap(err, "save license")
	}
	return nil
}

func (r *gormRepository) Delete(id string) error {
	if err := r.db.Delete(&models.License{}, "id = ?", id).Error; err != nil {
		return errors.Wrap(err, "delete license")
	}
	return nil
}
