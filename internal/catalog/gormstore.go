package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"ecofinds_backend/models"
)

// GormStore persists products through GORM. It speaks the same Store contract
// as MemoryStore so the service layer never sees the database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(p models.Product) (models.Product, error) {
	if strings.TrimSpace(p.Title) == "" {
		return models.Product{}, fmt.Errorf("%w: title is required", ErrValidation)
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.db.Create(&p).Error; err != nil {
		return models.Product{}, errors.Wrap(err, "catalog: create product")
	}
	return p, nil
}

func (s *GormStore) Get(id string) (models.Product, error) {
	var p models.Product
	if err := s.db.Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, errors.Wrap(err, "catalog: get product")
	}
	return p, nil
}

func (s *GormStore) List() ([]models.Product, error) {
	var products []models.Product
	// created_at asc keeps the same creation-order baseline MemoryStore has.
	if err := s.db.Order("created_at asc").Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "catalog: list products")
	}
	return products, nil
}

func (s *GormStore) Update(id string, patch Patch) (models.Product, error) {
	// One UPDATE over the patched columns only. Save after a separate First
	// would write back every column and let two concurrent patches revert
	// each other; a single statement keeps record mutations serialized.
	res := s.db.Model(&models.Product{}).Where("id = ?", id).Updates(patch.changes())
	if res.Error != nil {
		return models.Product{}, errors.Wrap(res.Error, "catalog: update product")
	}
	if res.RowsAffected == 0 {
		return models.Product{}, ErrNotFound
	}
	return s.Get(id)
}

func (s *GormStore) Delete(id string) error {
	res := s.db.Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "catalog: delete product")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
