package config

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"ecofinds_backend/models"
	"ecofinds_backend/utils"
)

func SeedUsers(db *gorm.DB) {
	log.Info("Seeding users...")

	password, _ := utils.HashPassword("password123")

	users := []models.User{
		{
			ID:        uuid.NewString(),
			Email:     "user1@example.com",
			Password:  password,
			Username:  "user1",
			Purchases: []string{},
			Cart:      []string{},
		},
		{
			ID:        uuid.NewString(),
			Email:     "user2@example.com",
			Password:  password,
			Username:  "user2",
			Purchases: []string{},
			Cart:      []string{},
		},
	}

	for _, user := range users {
		var existing models.User
		if err := db.Where("email = ?", user.Email).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&user).Error; err != nil {
					log.WithError(err).Warnf("Failed to seed user %s", user.Username)
				} else {
					log.Infof("User seeded: %s (ID: %s)", user.Username, user.ID)
				}
			}
		} else {
			log.Infof("User already exists: %s", user.Username)
		}
	}

	log.Info("User seeding complete")
}

func SeedProducts(db *gorm.DB) {
	log.Info("Seeding products...")

	var owner models.User
	if err := db.Where("email = ?", "user1@example.com").First(&owner).Error; err != nil {
		log.Warn("Seed owner not found, skipping product seeding")
		return
	}

	now := time.Now().UTC()
	products := []models.Product{
		{
			ID:          uuid.NewString(),
			OwnerID:     owner.ID,
			Title:       "Vintage Desk Lamp",
			Description: "Brass desk lamp from the 70s, fully working",
			Category:    "Furniture",
			Price:       45,
			Condition:   models.DefaultCondition,
			Status:      models.StatusAvailable,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			OwnerID:     owner.ID,
			Title:       "Mountain Bike",
			Description: "Hardtail, 29 inch wheels, recently serviced",
			Category:    "Sports",
			Price:       180,
			Condition:   models.DefaultCondition,
			Status:      models.StatusAvailable,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := db.Where("title = ? AND owner_id = ?", product.Title, product.OwnerID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&product).Error; err != nil {
					log.WithError(err).Warnf("Failed to seed product %s", product.Title)
				}
			}
		}
	}

	log.Info("Product seeding complete")
}
