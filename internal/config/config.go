package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the bot
type Config struct {
	// Discord
	DiscordToken string
	GuildID      string // optional: register commands to one guild for fast iteration

	// DynamoDB
	AWSRegion   string
	DynamoTable string

	// Seed game list
	GamesFile string

	// Keep-alive web server
	HealthAddr string

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken: os.Getenv("DISCORD_BOT_TOKEN"),
		GuildID:      os.Getenv("GUILD_ID"),
		AWSRegion:    os.Getenv("AWS_REGION"),
		DynamoTable:  getEnvOrDefault("DYNAMO_TABLE", "lfg_subscriptions"),
		GamesFile:    getEnvOrDefault("GAMES_FILE", "games.txt"),
		HealthAddr:   getEnvOrDefault("HEALTH_ADDR", ":8080"),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN is required")
	}
	if cfg.AWSRegion == "" {
		return nil, fmt.Errorf("AWS_REGION is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
