package handlers

import (
	"errors"

	"github.com/Aristide-Izab/mani-meetups/internal/middleware"
	"github.com/Aristide-Izab/mani-meetups/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// UpdateBusinessRequest represents business update request body
type UpdateBusinessRequest struct {
	BusinessName string `json:"businessName"`
	Description  string `json:"description"`
}

// GetBusinesses returns all businesses, optionally filtered by name search.
// Read failures degrade to an empty list so the browse page still renders.
func GetBusinesses(c *fiber.Ctx) error {
	search := c.Query("q", "")

	businesses, err := deps.Businesses.List(c.Context(), search)
	if err != nil || businesses == nil {
		businesses = []models.BusinessWithOwner{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    businesses,
	})
}

// GetBusiness returns a single business with its portfolio gallery
func GetBusiness(c *fiber.Ctx) error {
	businessID := c.Params("businessId")

	business, err := deps.Businesses.ByID(c.Context(), businessID)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Business not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Database error",
		})
	}

	gallery, err := deps.Gallery.ForBusiness(c.Context(), businessID)
	if err != nil || gallery == nil {
		gallery = []models.GalleryImage{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"business": business,
			"gallery":  gallery,
		},
	})
}

// UpdateMyBusiness updates the viewer's own business profile
func UpdateMyBusiness(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req UpdateBusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.BusinessName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Business name is required",
		})
	}

	business, err := deps.Businesses.Update(c.Context(), userID, req.BusinessName, req.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "No business found for this account",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update business",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    business,
	})
}
