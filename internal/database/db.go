package database

import (
	"github.com/go-faster/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"zimlicense-backend/internal/config"
	"zimlicense-backend/internal/models"
)

// Connect opens the Postgres connection and migrates the three tables.
// The unique indexes on companies.name and users.email are the storage
// backstop for the check-then-act uniqueness validations in the services.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	if err := db.AutoMigrate(
		&models.Company{},
		&models.License{},
		&models.User{},
	); err != nil {
		return nil, errors.Wrap(err, "auto migrate")
	}

	return db, nil
}
