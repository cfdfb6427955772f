package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Aristide-Izab/mani-meetups/internal/booking"
	"github.com/Aristide-Izab/mani-meetups/internal/config"
	"github.com/Aristide-Izab/mani-meetups/internal/database"
	"github.com/Aristide-Izab/mani-meetups/internal/handlers"
	"github.com/Aristide-Izab/mani-meetups/internal/messaging"
	"github.com/Aristide-Izab/mani-meetups/internal/routes"
	"github.com/Aristide-Izab/mani-meetups/internal/utils"
	"github.com/Aristide-Izab/mani-meetups/internal/ws"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/lmittmann/tint"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(log)

	utils.InitJWT(cfg.JWTSecret)

	ctx := context.Background()
	if err := database.Connect(ctx, cfg.DatabaseURL); err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	log.Info("database connected")

	// Repositories
	messageRepo := database.NewMessageRepository(database.Pool)
	profileRepo := database.NewProfileRepository(database.Pool)
	businessRepo := database.NewBusinessRepository(database.Pool)
	bookingRepo := database.NewBookingRepository(database.Pool)
	mallRepo := database.NewMallRepository(database.Pool)
	galleryRepo := database.NewGalleryRepository(database.Pool)

	// Services
	messagingSvc := messaging.NewService(messageRepo, profileRepo, businessRepo, log)
	bookingSvc := booking.NewService(bookingRepo, messageRepo, profileRepo, businessRepo, mallRepo, log)

	// Notification hub
	hub := ws.NewHub()
	go hub.Run()

	handlers.Init(handlers.Deps{
		Messaging:  messagingSvc,
		Bookings:   bookingSvc,
		Profiles:   profileRepo,
		Businesses: businessRepo,
		Malls:      mallRepo,
		Gallery:    galleryRepo,
		Hub:        hub,
	})

	app := fiber.New(fiber.Config{
		AppName: "Mani Meetups API v1.0",
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.AllowedOrigins, ","),
		AllowCredentials: true,
	}))

	routes.SetupRoutes(app)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("server starting", "addr", addr)
	if err := app.Listen(addr); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
