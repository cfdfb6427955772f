package routes

import (
	"github.com/Aristide-Izab/mani-meetups/internal/handlers"
	"github.com/Aristide-Izab/mani-meetups/internal/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes
func SetupRoutes(app *fiber.App) {
	// API v1 group
	api := app.Group("/api/v1")

	// Health check (public)
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Mani Meetups API is running",
		})
	})

	// Auth routes (public)
	auth := api.Group("/auth")
	auth.Post("/register", middleware.StrictRateLimiter(), handlers.Register)
	auth.Post("/login", middleware.StrictRateLimiter(), handlers.Login)
	auth.Post("/refresh", middleware.StrictRateLimiter(), handlers.RefreshToken)
	auth.Post("/logout", middleware.AuthMiddleware, handlers.Logout)
	auth.Get("/me", middleware.AuthMiddleware, handlers.GetMe)

	// Profile routes (protected)
	api.Put("/profile", middleware.AuthMiddleware, handlers.UpdateProfile)

	// Messaging routes (protected)
	messages := api.Group("/messages", middleware.AuthMiddleware)
	messages.Get("/contacts", handlers.GetContacts)
	messages.Post("/", handlers.SendMessage)
	messages.Get("/:counterpartId", handlers.OpenThread)

	// Booking routes (protected)
	bookings := api.Group("/bookings", middleware.AuthMiddleware)
	bookings.Post("/", handlers.CreateBooking)
	bookings.Get("/", handlers.GetBookings)
	bookings.Patch("/:bookingId/status", handlers.UpdateBookingStatus)

	// Business routes
	businesses := api.Group("/businesses")
	businesses.Get("/", handlers.GetBusinesses)
	businesses.Put("/me", middleware.AuthMiddleware, handlers.UpdateMyBusiness)
	businesses.Post("/me/gallery", middleware.AuthMiddleware, handlers.AddGalleryImage)
	businesses.Delete("/me/gallery/:imageId", middleware.AuthMiddleware, handlers.RemoveGalleryImage)
	businesses.Get("/:businessId", handlers.GetBusiness)

	// Mall routes (public)
	malls := api.Group("/malls")
	malls.Get("/", handlers.GetMalls)
	malls.Get("/:mallId", handlers.GetMall)

	// WebSocket route (protected)
	api.Get("/ws", middleware.AuthMiddleware, handlers.WebSocketUpgrade, websocket.New(handlers.WebSocketHandler))

	// WebSocket stats (protected, for debugging)
	api.Get("/ws/stats", middleware.AuthMiddleware, handlers.GetWebSocketStats)
}
