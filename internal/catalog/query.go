package catalog

import (
	"sort"
	"strings"

	"ecofinds_backend/models"
)

// Query describes one catalog read: all filters are optional and combine with
// AND. Zero values mean "no filter".
type Query struct {
	Category  string
	MinPrice  *float64
	MaxPrice  *float64
	Search    string
	SortBy    string // createdAt (default), updatedAt, price, title, category, condition, status
	SortOrder string // asc or desc (default)
}

// Run filters and sorts the given products. It never mutates its input; the
// result is a fresh slice. Ties on the sort key, and any unknown sort key,
// keep insertion order so repeated queries stay deterministic.
func (q Query) Run(products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if q.matches(p) {
			out = append(out, p)
		}
	}

	less := sortField(q.SortBy)
	if less == nil {
		return out
	}

	desc := q.SortOrder != "asc"
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func (q Query) matches(p models.Product) bool {
	if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
		return false
	}
	if q.MinPrice != nil && p.Price < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && p.Price > *q.MaxPrice {
		return false
	}
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		title := strings.ToLower(p.Title)
		desc := strings.ToLower(p.Description)
		if !strings.Contains(title, term) && !strings.Contains(desc, term) {
			return false
		}
	}
	return true
}

// sortField returns the ascending comparator for a sort key, or nil for keys
// the catalog does not sort on.
func sortField(key string) func(a, b models.Product) bool {
	switch key {
	case "", "createdAt":
		return func(a, b models.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "updatedAt":
		return func(a, b models.Product) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case "price":
		return func(a, b models.Product) bool { return a.Price < b.Price }
	case "title":
		return func(a, b models.Product) bool { return a.Title < b.Title }
	case "category":
		return func(a, b models.Product) bool { return a.Category < b.Category }
	case "condition":
		return func(a, b models.Product) bool { return a.Condition < b.Condition }
	case "status":
		return func(a, b models.Product) bool { return a.Status < b.Status }
	default:
		return nil
	}
}
