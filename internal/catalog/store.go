package catalog

import (
	"time"

	"ecofinds_backend/models"
)

// Store is the persistence contract for product records. Two providers
// implement it: the volatile MemoryStore and the database-backed GormStore.
// They are interchangeable at composition time; nothing above this interface
// may depend on provider-specific query syntax.
//
// Create assigns the id and both timestamps. Update merges the patch over the
// stored record and refreshes UpdatedAt; it must never touch ID, OwnerID or
// CreatedAt. List returns records in creation order, the Query Engine imposes
// any further ordering.
type Store interface {
	Create(p models.Product) (models.Product, error)
	Get(id string) (models.Product, error)
	List() ([]models.Product, error)
	Update(id string, patch Patch) (models.Product, error)
	Delete(id string) error
}

// Patch is a partial update of a product. Nil fields are left untouched.
// ID, OwnerID and CreatedAt are not part of the patch on purpose: a caller
// cannot override them no matter what it sends.
type Patch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Condition   *string  `json:"condition"`
	Status      *string  `json:"status"`
}

// changes lists the patched columns for a single-statement UPDATE. Writing
// only these columns in one statement lets the database serialize concurrent
// mutations: two patches to different fields of the same record both land,
// neither overwrites the other's column with a stale read.
func (patch Patch) changes() map[string]interface{} {
	m := map[string]interface{}{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		m["title"] = *patch.Title
	}
	if patch.Description != nil {
		m["description"] = *patch.Description
	}
	if patch.Category != nil {
		m["category"] = *patch.Category
	}
	if patch.Price != nil {
		m["price"] = *patch.Price
	}
	if patch.Image != nil {
		m["image"] = *patch.Image
	}
	if patch.Condition != nil {
		m["condition"] = *patch.Condition
	}
	if patch.Status != nil {
		m["status"] = *patch.Status
	}
	return m
}

func (patch Patch) apply(p *models.Product) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Condition != nil {
		p.Condition = *patch.Condition
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	p.UpdatedAt = time.Now().UTC()
}
