package identity

import (
	"sync"

	"ecofinds_backend/models"
)

// MemoryStore keeps accounts for the lifetime of the process. Same locking
// rationale as the catalog's MemoryStore.
type MemoryStore struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return models.User{}, ErrEmailTaken
		}
	}
	s.users = append(s.users, u)
	return u, nil
}

func (s *MemoryStore) FindByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (s *MemoryStore) FindByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}
