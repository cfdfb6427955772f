package middleware

import (
	"github.com/Aristide-Izab/mani-meetups/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates the JWT access token from the cookie and stores
// the viewer identity in the request context. Every derivation and dialog
// call downstream takes this identity explicitly.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("token")
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Unauthorized - No token provided",
		})
	}

	claims, err := utils.ValidateToken(tokenString)
	if err != nil || claims.Type != "access" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Unauthorized - Invalid token",
		})
	}

	c.Locals("userID", claims.UserID)
	c.Locals("email", claims.Email)
	c.Locals("userType", claims.UserType)

	return c.Next()
}

// GetUserID gets user ID from context
func GetUserID(c *fiber.Ctx) string {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return ""
	}
	return userID
}

// GetUserType gets the account role from context
func GetUserType(c *fiber.Ctx) string {
	userType, ok := c.Locals("userType").(string)
	if !ok {
		return ""
	}
	return userType
}
