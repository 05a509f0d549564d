package main

import (
	"log"
	"log/slog"

	"github.com/krishimitra/krishimitra/internal/config"
	"github.com/krishimitra/krishimitra/internal/db"
	"github.com/krishimitra/krishimitra/internal/genai"
	anthropicgenai "github.com/krishimitra/krishimitra/internal/genai/anthropic"
	geminigenai "github.com/krishimitra/krishimitra/internal/genai/gemini"
	"github.com/krishimitra/krishimitra/internal/imagestore/local"
	"github.com/krishimitra/krishimitra/internal/logging"
	"github.com/krishimitra/krishimitra/internal/service"
	"github.com/krishimitra/krishimitra/internal/store"
	"github.com/krishimitra/krishimitra/internal/web"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	images, err := local.NewLocalImageStore(cfg.ImagePath)
	if err != nil {
		logger.Error("failed to initialize image store", "error", err)
		return
	}

	ai := newCompleter(cfg, logger)

	chatService := service.NewChatService(ai, store.NewChatStore(database), logger)
	scanService := service.NewScanService(ai, store.NewScanStore(database), images, logger)

	server := web.NewServer(chatService, scanService, store.NewPriceStore(database), images, logger)

	logger.Info("starting server", "port", cfg.Port)
	if err := server.ListenAndServe(":" + cfg.Port); err != nil {
		logger.Error("server error", "error", err)
	}
}

// newCompleter selects the AI gateway from configuration. A nil return puts
// the services in demo mode: canned chat answers and a fixed disease report.
func newCompleter(cfg *config.Config, logger *slog.Logger) genai.Completer {
	if cfg.APIKey() == "" {
		logger.Info("no API key configured, running in demo mode")
		return nil
	}

	switch cfg.GenAIBackend {
	case "anthropic":
		logger.Info("using Anthropic backend", "model", cfg.AnthropicModel)
		return anthropicgenai.New(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	default:
		logger.Info("using Gemini backend", "model", cfg.GeminiModel)
		return geminigenai.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
}
