package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL            string
	OpenAIKey              string
	OpenAIModel            string
	Port                   string
	Env                    string
	SnapshotCron           string
	UsageCleanupCron       string
	MaxPredictionsPerMonth int
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  .env file not found, using system environment variables")
	}

	cfg := Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		OpenAIKey:              os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:            os.Getenv("OPENAI_MODEL"),
		Port:                   os.Getenv("PORT"),
		Env:                    os.Getenv("ENV"),
		SnapshotCron:           os.Getenv("SNAPSHOT_CRON"),
		UsageCleanupCron:       os.Getenv("USAGE_CLEANUP_CRON"),
		MaxPredictionsPerMonth: envInt("MAX_PREDICTIONS_PER_MONTH", 5),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = "gpt-4o-mini"
	}
	if cfg.SnapshotCron == "" {
		cfg.SnapshotCron = "0 */15 * * * *" // every 15 minutes
	}
	if cfg.UsageCleanupCron == "" {
		cfg.UsageCleanupCron = "0 0 3 * * *" // daily at 03:00
	}

	return cfg
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️  invalid %s=%q, using default %d", key, raw, fallback)
		return fallback
	}
	return n
}
