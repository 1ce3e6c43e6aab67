package identity

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"ecofinds_backend/models"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(u models.User) (models.User, error) {
	var existing models.User
	err := s.db.Where("email = ?", u.Email).First(&existing).Error
	if err == nil {
		return models.User{}, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, errors.Wrap(err, "identity: create user")
	}

	if err := s.db.Create(&u).Error; err != nil {
		return models.User{}, errors.Wrap(err, "identity: create user")
	}
	return u, nil
}

func (s *GormStore) FindByEmail(email string) (models.User, error) {
	var u models.User
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, errors.Wrap(err, "identity: find user by email")
	}
	return u, nil
}

func (s *GormStore) FindByID(id string) (models.User, error) {
	var u models.User
	if err := s.db.Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, errors.Wrap(err, "identity: find user by id")
	}
	return u, nil
}
