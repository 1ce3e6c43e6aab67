package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	// Server settings
	AppPort string `envconfig:"PORT" default:"3000"`
	Host    string `envconfig:"HOST" default:"0.0.0.0"`

	// Persistence provider: "gorm" (default) or "memory". DATABASE_URL selects
	// Postgres for the gorm provider; without it a local SQLite file is used.
	Store       string `envconfig:"STORE" default:"gorm"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"ecofinds.db"`

	// RESET_DB=true drops every table on startup, migrates from scratch and
	// seeds the demo accounts and listings.
	ResetDB bool `envconfig:"RESET_DB" default:"false"`

	// Filesystem root for uploaded listing photos, served under /uploads.
	UploadDir string `envconfig:"UPLOAD_DIR" default:"./uploads"`

	// JWT settings
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	return &cfg
}
