package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	// Generation API
	GenerationAPIKey     string
	GenerationAPIBaseURL string
	GenerationTimeoutMs  int

	// Auth
	JWTSecret string

	// Storage
	DataDir     string
	UploadDir   string
	FavoritesDB string

	// Server
	Port        string
	Environment string
	BaseURL     string
}

func Load() (*Config, error) {
	timeoutMs, err := strconv.Atoi(getEnv("GENERATION_TIMEOUT_MS", "20000"))
	if err != nil || timeoutMs <= 0 {
		return nil, fmt.Errorf("GENERATION_TIMEOUT_MS must be a positive integer")
	}

	dataDir := getEnv("ROOMLIFT_DATA_DIR", "")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".roomlift")
	}

	cfg := &Config{
		GenerationAPIKey:     getEnv("GENERATION_API_KEY", ""),
		GenerationAPIBaseURL: getEnv("GENERATION_API_BASE_URL", "https://api.roomlift.ai/v1/"),
		GenerationTimeoutMs:  timeoutMs,

		JWTSecret: getEnv("JWT_SECRET", ""),

		DataDir:     dataDir,
		UploadDir:   getEnv("ROOMLIFT_UPLOAD_DIR", filepath.Join(dataDir, "uploads")),
		FavoritesDB: getEnv("ROOMLIFT_FAVORITES_DB", filepath.Join(dataDir, "favorites.db")),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.GenerationAPIKey == "" {
		return fmt.Errorf("GENERATION_API_KEY is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
