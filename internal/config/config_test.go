package config_test

import (
	"testing"

	"github.com/sproutly/sproutly/internal/config"
	"github.com/stretchr/testify/assert"
)

func validConfig() config.Config {
	return config.Config{
		Addr:            ":8080",
		DBPath:          "test.db",
		LogLevel:        "INFO",
		ScanWorkerCount: 1,
		ScanQueueSize:   16,
		ScanHourUTC:     6,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_BadWorkerCount(t *testing.T) {
	cfg := validConfig()
	cfg.ScanWorkerCount = 0

	assert.Error(t, cfg.Validate())
}

func TestValidate_BadScanHour(t *testing.T) {
	cfg := validConfig()
	cfg.ScanHourUTC = 24

	assert.Error(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:sproutly.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 1, cfg.ScanWorkerCount)
	assert.Equal(t, 16, cfg.ScanQueueSize)
	assert.Equal(t, 6, cfg.ScanHourUTC)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("SCAN_WORKER_COUNT", "3")

	cfg := config.Load()
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 3, cfg.ScanWorkerCount)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("SCAN_QUEUE_SIZE", "lots")

	cfg := config.Load()
	assert.Equal(t, 16, cfg.ScanQueueSize)
}
