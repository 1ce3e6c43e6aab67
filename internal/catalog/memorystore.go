package catalog

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ecofinds_backend/models"
)

// MemoryStore keeps products in a process-lifetime slice, in creation order.
// The original storefront served every request from one cooperative loop; a
// Go server handles requests on real goroutines, so the mutex restores the
// one-mutation-at-a-time guarantee that loop gave for free.
type MemoryStore struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(p models.Product) (models.Product, error) {
	if strings.TrimSpace(p.Title) == "" {
		return models.Product{}, fmt.Errorf("%w: title is required", ErrValidation)
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	s.mu.Lock()
	s.products = append(s.products, p)
	s.mu.Unlock()

	return p, nil
}

func (s *MemoryStore) Get(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (s *MemoryStore) List() ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *MemoryStore) Update(id string, patch Patch) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			patch.apply(&s.products[i])
			return s.products[i], nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
