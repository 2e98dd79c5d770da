package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "CHAT_"

// loadDotEnv exports the variables of the given .env files that are not
// already set. Missing files are skipped; malformed ones panic.
func loadDotEnv(files ...string) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}
}

// parseEnv overlays cfg with CHAT_* environment variables.
func parseEnv(cfg *Config) {
	cfg.ServerURL = getEnv("SERVER_URL", cfg.ServerURL)
	cfg.RequestTimeout = getEnvAsDuration("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.StorageBackend = getEnv("STORAGE", cfg.StorageBackend)
	cfg.DatabasePath = getEnv("DATABASE_PATH", cfg.DatabasePath)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisDB = getEnvAsInt("REDIS_DB", cfg.RedisDB)
	cfg.RedisPrefix = getEnv("REDIS_PREFIX", cfg.RedisPrefix)
	cfg.LogMode = getEnv("LOG_MODE", cfg.LogMode)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(envPrefix + key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, exists := os.LookupEnv(envPrefix + key)
	if !exists {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		panic(fmt.Errorf("%s%s: %w", envPrefix, key, err))
	}
	return v
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	raw, exists := os.LookupEnv(envPrefix + key)
	if !exists {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		panic(fmt.Errorf("%s%s: %w", envPrefix, key, err))
	}
	return v
}
