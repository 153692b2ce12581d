package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photoshare-backend/internal/config"
	"photoshare-backend/internal/db"
	"photoshare-backend/internal/handlers"
	"photoshare-backend/internal/logger"
	"photoshare-backend/internal/services"
	"photoshare-backend/internal/store/mongostore"
	"photoshare-backend/internal/uploads"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const connectTimeout = 10 * time.Second

func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Connect once at startup and pass the handle down; no lazy global.
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	client, database, err := db.Connect(ctx, cfg.MongoURI)
	cancel()
	if err != nil {
		logger.Log.Fatalw("Failed to connect to database", "error", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	logger.Log.Infow("Connected to MongoDB", "database", database.Name())

	uploadStore, err := uploads.New(cfg.UploadDir)
	if err != nil {
		logger.Log.Fatalw("Failed to prepare upload dir", "error", err)
	}

	// Services
	st := mongostore.New(database)
	userService := services.NewUserService(st)
	photoService := services.NewPhotoService(st)

	// Fiber App
	app := fiber.New()

	// Middleware
	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// Routes
	app.Get("/users", handlers.ListUsersHandler(userService))
	app.Post("/users", handlers.CreateUserHandler(userService))
	app.Get("/photos", handlers.ListPhotosHandler(photoService))
	app.Post("/photos", handlers.UploadPhotoHandler(photoService, uploadStore))

	// Serve uploaded files
	app.Static("/uploads", uploadStore.Dir())

	// Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Start Server
	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			logger.Log.Panicw("Server stopped", "error", err)
		}
	}()
	logger.Log.Infow("API listening", "port", cfg.Port)

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Block until signal
	logger.Log.Infoln("Gracefully shutting down...")
	_ = app.Shutdown()
	logger.Log.Infoln("Server shutdown complete")
}
