package config

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDatabase opens the configured database: Postgres when DATABASE_URL
// is set, a local SQLite file otherwise.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
		log.Info("Connecting to Postgres")
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
		log.WithField("path", cfg.SQLitePath).Info("Connecting to SQLite")
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "config: open database")
	}
	return db, nil
}
