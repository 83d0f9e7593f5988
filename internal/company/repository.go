package company

import (
	"github.com/go-faster/errors"
	"gorm.io/gorm"

	"zimlicense-backend/internal/apperr"
	"zimlicense-backend/internal/models"
)

// Repository is the data-access surface for companies. The GORM
// implementation translates gorm.ErrRecordNotFound into apperr.ErrNotFound
// so the service layer never sees driver errors.
type Repository interface {
	ListAll() ([]models.Company, error)
	SearchByName(name string) ([]models.Company, error)
	FindByID(id string) (*models.Company, error)
	ExistsByName(name string) (bool, error)
	Create(c *models.Company) error
	Save(c *models.Company) error
	Delete(id string) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) ListAll() ([]models.Company, error) {
	var companies []models.Company
	if err := r.db.Find(&companies).Error; err != nil {
		return nil, errors.Wrap(err, "list companies")
	}
	return companies, nil
}

func (r *gormRepository) SearchByName(name string) ([]models.Company, error) {
	var companies []models.Company
	if err := r.db.
		Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").
		Find(&companies).Error; err != nil {
		return nil, errors.Wrap(err, "search companies by name")
	}
	return companies, nil
}

func (r *gormRepository) FindByID(id string) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("company not found with id: %s", id)
		}
		return nil, errors.Wrap(err, "find company")
	}
	return &company, nil
}

func (r *gormRepository) ExistsByName(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Company{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "count companies by name")
	}
	return count > 0, nil
}

func (r *gormRepository) Create(c *models.Company) error {
	if err := r.db.Create(c).Error; err != nil {
		return errors.Wrap(err, "create company")
	}
	return nil
}

func (r *gormRepository) Save(c *models.Company) error {
	if err := r.db.Save(c).Error; err != nil {
		return errors.Wrap(err, "save company")
	}
	return nil
}

func (r *gormRepository) Delete(id string) error {
	if err := r.db.Delete(&models.Company{}, "id = ?", id).Error; err != nil {
		return errors.Wrap(err, "delete company")
	}
	return nil
}
