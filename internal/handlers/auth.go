package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Aristide-Izab/mani-meetups/internal/models"
	"github.com/Aristide-Izab/mani-meetups/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// RegisterRequest represents registration request body
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	UserType string `json:"userType"` // 'customer' or 'business'
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration. Business accounts also get an empty
// business row they fill in later from their dashboard.
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Email, password, and full name are required",
		})
	}

	if req.UserType != models.UserTypeCustomer && req.UserType != models.UserTypeBusiness {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "User type must be customer or business",
		})
	}

	exists, err := deps.Profiles.EmailExists(c.Context(), req.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Database error",
		})
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"error":   "Email already registered",
		})
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to hash password",
		})
	}

	profile, err := deps.Profiles.Create(c.Context(), req.Email, req.FullName, req.Phone, hashedPassword, req.UserType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create account",
		})
	}

	if req.UserType == models.UserTypeBusiness {
		username := usernameFromName(req.FullName)
		if _, err := deps.Businesses.Create(c.Context(), profile.ID, req.FullName+"'s Business", username); err != nil {
			// Account creation already succeeded; the owner can still set
			// the business up from their profile page.
			return c.Status(fiber.StatusCreated).JSON(fiber.Map{
				"success": true,
				"data":    profile.ToResponse(),
			})
		}
	}

	if err := setAuthCookies(c, profile); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to generate token",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    profile.ToResponse(),
	})
}

// Login handles user login
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Email and password are required",
		})
	}

	profile, err := deps.Profiles.ByEmail(c.Context(), req.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid email or password",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Database error",
		})
	}

	if !utils.CheckPassword(profile.Password, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid email or password",
		})
	}

	if err := setAuthCookies(c, profile); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"user": profile.ToResponse(),
		},
	})
}

// GetMe returns the current authenticated user
func GetMe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	profile, err := deps.Profiles.ByID(c.Context(), userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "User not found",
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
		"data":    profile.ToResponse(),
	})
}

// Logout clears the auth cookies
func Logout(c *fiber.Ctx) error {
	clearCookie(c, "token")
	clearCookie(c, "refresh_token")

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

// RefreshToken issues new tokens from a valid refresh token
func RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Refresh token not found",
		})
	}

	claims, err := utils.ValidateToken(refreshToken)
	if err != nil || claims.Type != "refresh" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid refresh token",
		})
	}

	profile := models.Profile{ID: claims.UserID, Email: claims.Email, UserType: claims.UserType}
	if err := setAuthCookies(c, profile); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Tokens refreshed successfully",
	})
}

func setAuthCookies(c *fiber.Ctx, profile models.Profile) error {
	token, err := utils.GenerateToken(profile.ID, profile.Email, profile.UserType)
	if err != nil {
		return err
	}
	refreshToken, err := utils.GenerateRefreshToken(profile.ID, profile.Email, profile.UserType)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   900, // 15 minutes
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   604800, // 7 days
	})
	return nil
}

func clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   -1,
	})
}

// usernameFromName derives a handle like "thandi-n" from a full name.
func usernameFromName(fullName string) string {
	parts := strings.Fields(strings.ToLower(fullName))
	if len(parts) == 0 {
		return "business"
	}
	username := parts[0]
	if len(parts) > 1 {
		username = fmt.Sprintf("%s-%c", parts[0], parts[1][0])
	}
	return username
}
