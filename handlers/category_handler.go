package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ecofinds_backend/internal/catalog"
)

type CategoryHandler struct {
	Catalog *catalog.Service
}

func NewCategoryHandler(svc *catalog.Service) *CategoryHandler {
	return &CategoryHandler{Catalog: svc}
}

// GetCategories - GET /api/categories
// Categories reflect live listings, there is no fixed list.
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.Catalog.Categories()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"categories": categories})
}
