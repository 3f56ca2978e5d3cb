package postgres

import (
	"bazaar/internal/errors"
	"bazaar/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate applies the schema to the connected database. uuid_generate_v7()
// requires the pg_uuidv7 extension to be available on the server.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_uuidv7`).Error; err != nil {
		return errors.Wrap(err, "failed to create pg_uuidv7 extension")
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.ProfileModel{},
		&model.OfferModel{},
		&model.OfferDetailModel{},
		&model.OrderModel{},
		&model.ReviewModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate database schema")
	}

	return nil
}
