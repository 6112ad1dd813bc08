package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"roomlift-backend/internal/config"
	"roomlift-backend/internal/credits"
	"roomlift-backend/internal/favorites"
	"roomlift-backend/internal/generation"
	"roomlift-backend/internal/handlers"
	"roomlift-backend/internal/kvstore"
	"roomlift-backend/internal/middleware"
	"roomlift-backend/internal/share"
	"roomlift-backend/internal/watermark"
	"roomlift-backend/internal/wizard"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Flat key-value store (favorites mirror + credit counters)
	kv, err := kvstore.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize key-value store: %v", err)
	}

	// Credit ledger
	ledger := credits.NewLedger(kv)

	// Generation client
	generator := generation.NewClient(
		cfg.GenerationAPIBaseURL,
		cfg.GenerationAPIKey,
		time.Duration(cfg.GenerationTimeoutMs)*time.Millisecond,
	)

	// Favorites: sqlite primary with kv mirror; open failure degrades to
	// mirror-only rather than aborting startup.
	favRepo := favorites.NewRepository(cfg.FavoritesDB, kv)
	defer favRepo.Close()

	// Watermark engine
	engine, err := watermark.NewEngine()
	if err != nil {
		log.Fatalf("Failed to initialize watermark engine: %v", err)
	}

	// Share broker: the server has no native share surface of its own, so the
	// broker always falls back to the manual menu.
	broker := share.NewBroker(nil, nil)

	// Wizard session manager
	manager := wizard.NewManager()

	// Initialize handlers
	wizardHandler := handlers.NewWizardHandler(manager, ledger, generator, cfg.UploadDir)
	creditsHandler := handlers.NewCreditsHandler(ledger)
	favoritesHandler := handlers.NewFavoritesHandler(favRepo)
	watermarkHandler := handlers.NewWatermarkHandler(engine)
	shareHandler := handlers.NewShareHandler(broker, engine)

	// Setup router
	router := gin.Default()

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	// Option catalogs
	api.GET("/options", handlers.OptionsHandler)

	// Wizard routes
	api.POST("/wizard", wizardHandler.CreateSession)
	api.GET("/wizard/:session_id", wizardHandler.GetSession)
	api.POST("/wizard/:session_id/upload", wizardHandler.Upload)
	api.POST("/wizard/:session_id/advance", wizardHandler.Advance)
	api.POST("/wizard/:session_id/back", wizardHandler.Back)
	api.POST("/wizard/:session_id/restart", wizardHandler.Restart)
	api.POST("/wizard/:session_id/generate", wizardHandler.Generate)

	// Credits
	api.GET("/credits", creditsHandler.GetCredits)
	api.POST("/credits/plan", creditsHandler.SetPlan)

	// Favorites
	api.GET("/favorites", favoritesHandler.List)
	api.POST("/favorites", favoritesHandler.Add)
	api.DELETE("/favorites/:favorite_id", favoritesHandler.Delete)
	api.GET("/favorites/check", favoritesHandler.Check)

	// Watermark and share
	api.POST("/designs/watermark", watermarkHandler.Apply)
	api.POST("/share", shareHandler.Share)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
