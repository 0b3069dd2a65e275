package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Teflondom25/LFG-Bot/internal/bot"
	"github.com/Teflondom25/LFG-Bot/internal/config"
	"github.com/Teflondom25/LFG-Bot/internal/game"
	"github.com/Teflondom25/LFG-Bot/internal/health"
	"github.com/Teflondom25/LFG-Bot/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	slog.Info("Starting LFG Subscription Bot")

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the seed game list for autocomplete. A missing file is not
	// fatal: autocomplete then only suggests games already in the store.
	seedGames, err := game.LoadSeedList(cfg.GamesFile)
	if err != nil {
		slog.Warn("Seed game list not loaded, autocomplete will only suggest existing entries", "file", cfg.GamesFile, "error", err)
	} else {
		slog.Info("Loaded seed game list", "file", cfg.GamesFile, "count", len(seedGames))
	}

	// Connect to the subscription store
	client, err := storage.NewDynamoClient(ctx, cfg.AWSRegion)
	if err != nil {
		slog.Error("Failed to create DynamoDB client", "error", err)
		os.Exit(1)
	}
	store := storage.NewDynamoStore(client, cfg.DynamoTable)

	// Create and start the bot
	b, err := bot.New(cfg, store, seedGames)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	if err := b.Start(ctx); err != nil {
		slog.Error("Failed to start bot", "error", err)
		os.Exit(1)
	}

	// Start the keep-alive server for uptime monitors
	healthSrv := health.New(cfg.HealthAddr)
	healthSrv.Start()

	slog.Info("Bot is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	slog.Info("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := healthSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error stopping keep-alive server", "error", err)
	}

	// Stop the bot gracefully
	if err := b.Stop(); err != nil {
		slog.Error("Error during shutdown", "error", err)
	}

	slog.Info("Bot stopped")
}

func setupLogging(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
