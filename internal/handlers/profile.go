package handlers

import (
	"errors"

	"github.com/Aristide-Izab/mani-meetups/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// UpdateProfileRequest represents profile update request body
type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// UpdateProfile updates the viewer's editable profile fields
func UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Full name is required",
		})
	}

	profile, err := deps.Profiles.Update(c.Context(), userID, req.FullName, req.Phone)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "User not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update profile",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    profile.ToResponse(),
	})
}
