package catalog

import (
	"ecofinds_backend/models"
)

// Authorize gates mutations: only the owner of a listing may update or delete
// it. Creates are open to any authenticated user and reads are public, so
// neither goes through here.
func Authorize(actingUserID string, p models.Product) error {
	if actingUserID != p.OwnerID {
		return ErrForbidden
	}
	return nil
}
