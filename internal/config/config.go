package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	DBPath          string
	LogLevel        string
	ScanWorkerCount int
	ScanQueueSize   int
	ScanHourUTC     int
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:            envOr("ADDR", ":8080"),
		DBPath:          envOr("DB_PATH", "file:sproutly.db"),
		LogLevel:        envOr("LOG_LEVEL", "INFO"),
		ScanWorkerCount: envIntOr("SCAN_WORKER_COUNT", 1),
		ScanQueueSize:   envIntOr("SCAN_QUEUE_SIZE", 16),
		ScanHourUTC:     envIntOr("SCAN_HOUR_UTC", 6),
	}
}

// Validate checks that the loaded configuration is usable.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.ScanWorkerCount <= 0 {
		return fmt.Errorf("SCAN_WORKER_COUNT must be positive")
	}
	if c.ScanQueueSize <= 0 {
		return fmt.Errorf("SCAN_QUEUE_SIZE must be positive")
	}
	if c.ScanHourUTC < 0 || c.ScanHourUTC > 23 {
		return fmt.Errorf("SCAN_HOUR_UTC must be in [0,23]")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
