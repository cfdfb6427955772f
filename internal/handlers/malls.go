package handlers

import (
	"errors"

	"github.com/Aristide-Izab/mani-meetups/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// GetMalls returns all mall locations. Read failures degrade to an empty
// list.
func GetMalls(c *fiber.Ctx) error {
	malls, err := deps.Malls.List(c.Context())
	if err != nil || malls == nil {
		malls = []models.Mall{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    malls,
	})
}

// GetMall returns a single mall
func GetMall(c *fiber.Ctx) error {
	mallID := c.Params("mallId")

	mall, err := deps.Malls.ByID(c.Context(), mallID)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Mall not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Database error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    mall,
	})
}
