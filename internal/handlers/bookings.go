package handlers

import (
	"errors"

	"github.com/Aristide-Izab/mani-meetups/internal/booking"
	"github.com/Aristide-Izab/mani-meetups/internal/middleware"
	"github.com/Aristide-Izab/mani-meetups/internal/models"
	"github.com/Aristide-Izab/mani-meetups/internal/ws"

	"github.com/gofiber/fiber/v2"
)

// CreateBookingRequest represents booking creation request body
type CreateBookingRequest struct {
	BusinessID  string `json:"businessId"`
	MallID      string `json:"mallId"`
	BookingDate string `json:"bookingDate"` // YYYY-MM-DD
	BookingTime string `json:"bookingTime"` // HH:MM
}

// UpdateBookingStatusRequest represents status update request body
type UpdateBookingStatusRequest struct {
	Status string `json:"status"` // 'confirmed' or 'cancelled'
}

// CreateBooking creates a booking request. The notification message to the
// business owner is sent inside the service; its failure never fails the
// booking.
func CreateBooking(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	created, err := deps.Bookings.Create(c.Context(), booking.CreateInput{
		CustomerID:  userID,
		BusinessID:  req.BusinessID,
		MallID:      req.MallID,
		BookingDate: req.BookingDate,
		BookingTime: req.BookingTime,
	})
	if errors.Is(err, booking.ErrMissingFields) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Please fill in all fields",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create booking",
		})
	}

	if deps.Hub != nil {
		if business, err := deps.Businesses.ByID(c.Context(), created.BusinessID); err == nil {
			deps.Hub.Publish(business.OwnerID, ws.EventBookingCreated, ws.BookingPayload{
				BookingID: created.ID,
				Status:    created.Status,
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    created,
	})
}

// GetBookings lists the bookings visible to the viewer: their own for a
// customer, their business's requests for a business owner. Read failures
// degrade to an empty list.
func GetBookings(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	userType := middleware.GetUserType(c)

	bookings, err := deps.Bookings.ListForViewer(c.Context(), userID, userType)
	if err != nil || bookings == nil {
		bookings = []models.BookingWithMall{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    bookings,
	})
}

// UpdateBookingStatus confirms or cancels a pending booking. Only the owning
// business can move a booking, and only out of pending.
func UpdateBookingStatus(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	bookingID := c.Params("bookingId")

	var req UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.Status != models.BookingConfirmed && req.Status != models.BookingCancelled {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Status must be confirmed or cancelled",
		})
	}

	updated, err := deps.Bookings.UpdateStatus(c.Context(), userID, bookingID, req.Status)
	if errors.Is(err, booking.ErrInvalidTransition) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"error":   "Booking is not pending or does not belong to your business",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update booking",
		})
	}

	if deps.Hub != nil {
		deps.Hub.Publish(updated.CustomerID, ws.EventBookingStatus, ws.BookingPayload{
			BookingID: updated.ID,
			Status:    updated.Status,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    updated,
	})
}
