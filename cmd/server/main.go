package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/corgigo/corgigo-backend/config"
	"github.com/corgigo/corgigo-backend/internal/app/controller"
	"github.com/corgigo/corgigo-backend/internal/app/repository"
	"github.com/corgigo/corgigo-backend/internal/app/service"
	"github.com/corgigo/corgigo-backend/internal/db"
	"github.com/corgigo/corgigo-backend/internal/middleware"
	"github.com/corgigo/corgigo-backend/internal/router"
	"github.com/corgigo/corgigo-backend/internal/scheduler"
	"github.com/corgigo/corgigo-backend/internal/storage"
	"github.com/corgigo/corgigo-backend/pkg/logger"
	"github.com/corgigo/corgigo-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting CorgiGo Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed the initial admin account (optional)
	if err := db.SeedAdmin(); err != nil {
		logger.Warn("Failed to seed admin account", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Initialize Redis for token revocation (optional)
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Redis unavailable, token revocation disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer redis.Close()
		}
	}

	// Initialize storage
	documentStorage := storage.NewLocalStorage(cfg.Upload.Dir, cfg.Upload.PublicPrefix)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	profileRepo := repository.NewRestaurantProfileRepository(db.GetDB())
	documentRepo := repository.NewRestaurantDocumentRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	documentService := service.NewDocumentService(db.GetDB(), documentRepo, documentStorage)
	restaurantService := service.NewRestaurantService(profileRepo, userRepo, documentService)
	adminService := service.NewAdminService(profileRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	restaurantController := controller.NewRestaurantController(restaurantService)
	adminController := controller.NewAdminController(adminService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Start the pending-review backlog reporter
	reviewScheduler := scheduler.NewPendingReviewScheduler(adminService)
	if err := reviewScheduler.Start(); err != nil {
		logger.Warn("Failed to start pending review scheduler", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer reviewScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		restaurantController,
		adminController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
