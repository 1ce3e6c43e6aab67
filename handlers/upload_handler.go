package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// UploadHandler stores listing photos under its configured directory and
// hands back their public URL, which the client then submits as the product's
// image field.
type UploadHandler struct {
	dir string
}

func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{dir: dir}
}

// UploadImage - POST /api/upload
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image file is required",
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only .jpg, .jpeg, and .png files are allowed",
		})
	}

	productDir := filepath.Join(h.dir, "products")
	if err := os.MkdirAll(productDir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save file",
		})
	}

	// Timestamped name, the original filename is untrusted input.
	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)

	if err := c.SaveFile(file, filepath.Join(productDir, filename)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save file",
		})
	}

	return c.JSON(fiber.Map{
		"url": "/uploads/products/" + filename,
	})
}
