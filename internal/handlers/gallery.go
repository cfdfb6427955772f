package handlers

import (
	"errors"

	"github.com/Aristide-Izab/mani-meetups/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// AddGalleryImageRequest represents gallery image metadata request body.
// The image itself is uploaded to the external object store by the client;
// only the resulting URL is recorded here.
type AddGalleryImageRequest struct {
	ImageURL string  `json:"imageUrl"`
	Caption  *string `json:"caption,omitempty"`
}

// AddGalleryImage records a portfolio image for the viewer's business
func AddGalleryImage(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req AddGalleryImageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.ImageURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Image URL is required",
		})
	}

	business, err := deps.Businesses.ByOwner(c.Context(), userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "No business found for this account",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Database error",
		})
	}

	image, err := deps.Gallery.Add(c.Context(), business.ID, req.ImageURL, req.Caption)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to add image",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    image,
	})
}

// RemoveGalleryImage deletes a portfolio image from the viewer's business
func RemoveGalleryImage(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	imageID := c.Params("imageId")

	business, err := deps.Businesses.ByOwner(c.Context(), userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "No business found for this account",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Database error",
		})
	}

	removed, err := deps.Gallery.Remove(c.Context(), imageID, business.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to remove image",
		})
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Image not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Image removed successfully",
	})
}
