package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/sefazor/weddingplanner-backend/internal/config"
	"github.com/sefazor/weddingplanner-backend/internal/handler"
	"github.com/sefazor/weddingplanner-backend/internal/logger"
	"github.com/sefazor/weddingplanner-backend/internal/repository"
	"github.com/sefazor/weddingplanner-backend/internal/router"
	"github.com/sefazor/weddingplanner-backend/internal/service"
	"github.com/sefazor/weddingplanner-backend/pkg/database"
	"github.com/sefazor/weddingplanner-backend/pkg/utils"
)

func main() {
	// Load .env (optional outside development)
	_ = godotenv.Load()

	cfg := config.Load()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Initialize database
	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	weddingRepo := repository.NewWeddingRepository(db)
	rsvpRepo := repository.NewRSVPRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// Services
	sessionService := service.NewSessionService(sessionRepo, cfg.SessionTTL)
	authService := service.NewAuthService(userRepo, sessionService)
	weddingService := service.NewWeddingService(weddingRepo, cfg.OwnerOnlyDelete)
	rsvpService := service.NewRSVPService(rsvpRepo, weddingRepo)

	// Validator
	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator, cfg.SessionCookie, cfg.CookieSecure)
	weddingHandler := handler.NewWeddingHandler(weddingService, authService, validator)
	rsvpHandler := handler.NewRSVPHandler(rsvpService)

	app := router.New(cfg, sessionService, authHandler, weddingHandler, rsvpHandler)

	log.Fatal(app.Listen(":" + cfg.Port))
}
