package config

import (
	"gorm.io/gorm"

	log "github.com/sirupsen/logrus"

	"ecofinds_backend/models"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
	)

	if err != nil {
		log.WithError(err).Error("Failed to migrate database schema")
		return err
	}

	log.Info("Database migrations completed successfully")
	return nil
}

func ResetAndMigrate(db *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Product{},
	}

	if err := db.Migrator().DropTable(tables...); err != nil {
		log.WithError(err).Error("Failed to drop tables")
		return err
	}

	log.Info("All tables dropped successfully")

	if err := db.AutoMigrate(tables...); err != nil {
		log.WithError(err).Error("Failed to auto migrate")
		return err
	}

	SeedUsers(db)
	SeedProducts(db)

	log.Info("Database reset and migration completed successfully")
	return nil
}
