package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"ecofinds_backend/internal/catalog"
	"ecofinds_backend/models"
	"ecofinds_backend/utils"
)

type ProductHandler struct {
	Catalog *catalog.Service
}

func NewProductHandler(svc *catalog.Service) *ProductHandler {
	return &ProductHandler{Catalog: svc}
}

// CreateProductRequest
type CreateProductRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Condition   string  `json:"condition"`
	Image       string  `json:"image"`
}

// CreateProduct - POST /api/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	product, err := h.Catalog.Create(catalog.CreateInput{
		OwnerID:     utils.ActingUserID(c),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Image:       req.Image,
		Condition:   req.Condition,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"product": product})
}

// ListProducts - GET /api/products
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	query := catalog.Query{
		Category:  c.Query("category"),
		Search:    c.Query("q"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "minPrice must be a number"})
		}
		query.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "maxPrice must be a number"})
		}
		query.MaxPrice = &v
	}

	products, err := h.Catalog.List(query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.ProductList{Products: products, Total: len(products)})
}

// GetProduct - GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.Catalog.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"product": product})
}

// GetMyProducts - GET /api/products/mine
func (h *ProductHandler) GetMyProducts(c *fiber.Ctx) error {
	products, err := h.Catalog.ListByOwner(utils.ActingUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.ProductList{Products: products, Total: len(products)})
}

// UpdateProduct - PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	var patch catalog.Patch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	product, err := h.Catalog.Update(c.Params("id"), utils.ActingUserID(c), patch)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"product": product})
}

// DeleteProduct - DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.Catalog.Delete(c.Params("id"), utils.ActingUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}
