package handlers

import (
	"errors"
	"time"

	"github.com/Aristide-Izab/mani-meetups/internal/messaging"
	"github.com/Aristide-Izab/mani-meetups/internal/middleware"
	"github.com/Aristide-Izab/mani-meetups/internal/models"
	"github.com/Aristide-Izab/mani-meetups/internal/ws"

	"github.com/gofiber/fiber/v2"
)

// SendMessageRequest represents send message request body
type SendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	Message    string `json:"message"`
}

// GetContacts returns the viewer's conversation list with unread counts.
// Fetch problems degrade to an empty list so the dashboard still renders.
func GetContacts(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	userType := middleware.GetUserType(c)

	contacts := deps.Messaging.Contacts(c.Context(), userID, userType)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"contacts":    contacts,
			"totalUnread": messaging.TotalUnread(contacts),
		},
	})
}

// OpenThread returns the full history with a counterpart, oldest first, and
// marks their messages to the viewer as read.
func OpenThread(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	counterpartID := c.Params("counterpartId")

	messages, err := deps.Messaging.OpenThread(c.Context(), userID, counterpartID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load conversation",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    messages,
	})
}

// SendMessage appends a message to a thread and returns the updated history
func SendMessage(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.ReceiverID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Receiver ID is required",
		})
	}

	messages, err := deps.Messaging.Send(c.Context(), userID, req.ReceiverID, req.Message)
	if errors.Is(err, messaging.ErrEmptyMessage) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Message cannot be empty",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to send message",
		})
	}

	if deps.Hub != nil {
		if sent := latestFrom(messages, userID); sent != nil {
			deps.Hub.Publish(req.ReceiverID, ws.EventMessageNew, ws.MessagePayload{
				MessageID: sent.ID,
				SenderID:  sent.SenderID,
				CreatedAt: sent.CreatedAt,
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    messages,
	})
}

// latestFrom finds the newest message in the thread sent by the given user.
func latestFrom(messages []models.Message, senderID string) *models.Message {
	var latest *models.Message
	var latestAt time.Time
	for i := range messages {
		if messages[i].SenderID == senderID && !messages[i].CreatedAt.Before(latestAt) {
			latest = &messages[i]
			latestAt = messages[i].CreatedAt
		}
	}
	return latest
}
