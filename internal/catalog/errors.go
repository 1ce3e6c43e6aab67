package catalog

import (
	"errors"
)

// Error taxonomy of the catalog. Callers match with errors.Is; anything
// outside this set is an internal failure of the persistence provider.
var (
	// ErrValidation marks malformed or missing input. The store is never
	// mutated when it is returned.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound means the referenced product id does not exist.
	ErrNotFound = errors.New("product not found")

	// ErrForbidden means the acting user is not the owner of the product.
	// It is only ever returned for an existing product, after the lookup
	// succeeded, so it never doubles as an existence probe.
	ErrForbidden = errors.New("not authorized")
)
