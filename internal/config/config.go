package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	HTTPPort     string
	AppMode      string
	LogLevel     string
	FiberPrefork bool

	ClickHouseAddr     string
	ClickHouseDB       string
	ClickHouseUser     string
	ClickHousePassword string

	FetchRowLimit    int
	WorkerBufferSize int
	WorkerBatchSize  int
	WorkerFlushEvery time.Duration
}

// Load reads configuration from environment variables with sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", ":8080"),
		AppMode:            strings.ToLower(getEnv("APP_MODE", "dev")),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
		FiberPrefork:       parseBoolEnv("FIBER_PREFORK", false),
		ClickHouseAddr:     getEnv("CLICKHOUSE_ADDR", "localhost:9000"),
		ClickHouseDB:       getEnv("CLICKHOUSE_DB", "marketing"),
		ClickHouseUser:     getEnv("CLICKHOUSE_USER", "default"),
		ClickHousePassword: os.Getenv("CLICKHOUSE_PASSWORD"),
		FetchRowLimit:      parseIntEnv("FETCH_ROW_LIMIT", 10000),
		WorkerBufferSize:   parseIntEnv("WORKER_BUFFER_SIZE", 1024),
		WorkerBatchSize:    parseIntEnv("WORKER_BATCH_SIZE", 200),
		WorkerFlushEvery:   parseDurationEnv("WORKER_FLUSH_EVERY", 5*time.Second),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseBoolEnv(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseIntEnv(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseDurationEnv(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return parsed
}
