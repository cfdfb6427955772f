package handlers

import (
	"github.com/Aristide-Izab/mani-meetups/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// WebSocketUpgrade checks if the request should be upgraded to WebSocket
func WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}

	return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{
		"success": false,
		"error":   "WebSocket upgrade required",
	})
}

// WebSocketHandler registers the connection with the notification hub
func WebSocketHandler(c *websocket.Conn) {
	userID := c.Locals("userID").(string)

	client := ws.NewClient(userID, c, deps.Hub)
	deps.Hub.Register <- client

	go client.WritePump()
	client.ReadPump() // blocks until the connection closes
}

// GetWebSocketStats returns notification hub statistics
func GetWebSocketStats(c *fiber.Ctx) error {
	if deps.Hub == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"error":   "Notification hub not initialized",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"onlineUsers": deps.Hub.OnlineCount(),
		},
	})
}
