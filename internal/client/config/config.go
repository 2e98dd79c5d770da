package config

import (
	"os"
	"time"
)

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// Config holds runtime settings for the gophchat CLI.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration

	StorageBackend string
	DatabasePath   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	LogMode string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.RequestTimeout = 15 * time.Second
	c.StorageBackend = StorageSQLite
	c.DatabasePath = "chat.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPassword = ""
	c.RedisDB = 0
	c.RedisPrefix = "gophchat:"
	c.LogMode = "development"
}

// LoadConfig constructs a Config, applies defaults, then overlays the config
// file, the environment and finally command-line flags. Later sources take
// precedence over earlier ones. Malformed values in any source panic.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, configFilePath(args))
	loadDotEnv(".env")
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
