package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port     string
	LogLevel string

	// Uploads
	UploadDir     string
	MaxFileSize   int64
	MaxBatchFiles int

	// Gemini
	GeminiAPIKey  string
	GeminiBaseURL string
	FlashModel    string
	ProModel      string

	// Image preprocessing
	MaxImageDimension int
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		MaxFileSize:       5 * 1024 * 1024,
		MaxBatchFiles:     5,
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiBaseURL:     getEnv("GEMINI_BASE_URL", ""),
		FlashModel:        getEnv("GEMINI_FLASH_MODEL", "gemini-1.5-flash"),
		ProModel:          getEnv("GEMINI_PRO_MODEL", "gemini-1.5-pro"),
		MaxImageDimension: 1024,
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
