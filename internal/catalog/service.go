package catalog

import (
	"fmt"
	"strings"

	"ecofinds_backend/models"
)

// Service is the composition root of the catalog: it validates input, runs the
// ownership check for mutations and talks to whichever Store it was built
// with. Transport is somebody else's problem.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateInput carries the caller-supplied fields of a new listing. OwnerID
// comes from the authenticated identity, never from the request body.
type CreateInput struct {
	OwnerID     string
	Title       string
	Description string
	Category    string
	Price       float64
	Image       string
	Condition   string
}

func (s *Service) Create(in CreateInput) (models.Product, error) {
	if in.OwnerID == "" {
		return models.Product{}, fmt.Errorf("%w: ownerId is required", ErrValidation)
	}
	if strings.TrimSpace(in.Title) == "" {
		return models.Product{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Price < 0 {
		return models.Product{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	p := models.Product{
		OwnerID:     in.OwnerID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Image:       in.Image,
		Condition:   in.Condition,
		Status:      models.StatusAvailable,
	}
	if p.Category == "" {
		p.Category = models.DefaultCategory
	}
	if p.Condition == "" {
		p.Condition = models.DefaultCondition
	}

	return s.store.Create(p)
}

func (s *Service) Get(id string) (models.Product, error) {
	return s.store.Get(id)
}

// List returns the filtered, sorted view of the catalog plus the match count.
func (s *Service) List(q Query) ([]models.Product, error) {
	all, err := s.store.List()
	if err != nil {
		return nil, err
	}
	return q.Run(all), nil
}

// ListByOwner returns one user's listings, newest first.
func (s *Service) ListByOwner(ownerID string) ([]models.Product, error) {
	all, err := s.store.List()
	if err != nil {
		return nil, err
	}
	mine := make([]models.Product, 0)
	for _, p := range all {
		if p.OwnerID == ownerID {
			mine = append(mine, p)
		}
	}
	return Query{}.Run(mine), nil
}

func (s *Service) Update(id, actingUserID string, patch Patch) (models.Product, error) {
	if err := validatePatch(patch); err != nil {
		return models.Product{}, err
	}

	// Existence is resolved before ownership, so Forbidden always implies the
	// listing exists.
	p, err := s.store.Get(id)
	if err != nil {
		return models.Product{}, err
	}
	if err := Authorize(actingUserID, p); err != nil {
		return models.Product{}, err
	}

	return s.store.Update(id, patch)
}

func (s *Service) Delete(id, actingUserID string) error {
	p, err := s.store.Get(id)
	if err != nil {
		return err
	}
	if err := Authorize(actingUserID, p); err != nil {
		return err
	}
	return s.store.Delete(id)
}

// Categories derives the distinct category set from live listings. There is
// no fixed enumeration: the set shrinks when the last product of a category
// is deleted.
func (s *Service) Categories() ([]string, error) {
	all, err := s.store.List()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range all {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

func validatePatch(patch Patch) error {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	if patch.Price != nil && *patch.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if patch.Status != nil && !models.ValidStatus(*patch.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, *patch.Status)
	}
	return nil
}
