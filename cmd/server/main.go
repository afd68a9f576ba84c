package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danuarta/certificate-analyzer-api/internal/analyzer"
	"github.com/danuarta/certificate-analyzer-api/internal/config"
	"github.com/danuarta/certificate-analyzer-api/internal/handlers"
	"github.com/danuarta/certificate-analyzer-api/internal/router"
	"github.com/danuarta/certificate-analyzer-api/internal/services"
	"github.com/danuarta/certificate-analyzer-api/internal/uploader"
	"github.com/danuarta/certificate-analyzer-api/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := utils.NewLogger(cfg.LogLevel)

	// Initialize upload directory
	up, err := uploader.New(cfg.UploadDir, cfg.MaxFileSize, cfg.MaxBatchFiles)
	if err != nil {
		logger.Fatal("Failed to initialize uploader", "error", err)
	}

	// Build the Gemini client once and inject it everywhere it is needed
	clientOpts := []analyzer.ClientOption{}
	if cfg.GeminiBaseURL != "" {
		clientOpts = append(clientOpts, analyzer.WithBaseURL(cfg.GeminiBaseURL))
	}
	client, err := analyzer.NewClient(cfg.GeminiAPIKey, clientOpts...)
	if err != nil {
		logger.Fatal("Failed to initialize Gemini client", "error", err)
	}
	llm := analyzer.NewGeminiAnalyzer(client, cfg.FlashModel, logger)

	// Initialize document service
	docService := services.NewService(llm, cfg, logger)

	// Setup HTTP router
	uploadHandler := handlers.NewUploadHandler(docService, up, cfg, logger)
	handler := router.NewRouter(uploadHandler, logger)

	// Create HTTP server. The write timeout is generous because a response
	// waits on the Gemini call.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
