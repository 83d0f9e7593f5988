package auth

import (
	"github.com/go-faster/errors"
	"gorm.io/gorm"

	"zimlicense-backend/internal/apperr"
	"zimlicense-backend/internal/models"
)

type Repository interface {
	FindByEmail(email string) (*models.User, error)
	ExistsByEmail(email string) (bool, error)
	Create(u *models.User) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user not found with email: %s", email)
		}
		return nil, errors.Wrap(err, "find user")
	}
	return &user, nil
}

func (r *gormRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "count users by email")
	}
	return count > 0, nil
}

func (r *gormRepository) Create(u *models.User) error {
	if err := r.db.Create(u).Error; err != nil {
		return errors.Wrap(err, "create user")
	}
	return nil
}
