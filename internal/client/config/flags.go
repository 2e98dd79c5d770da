package config

import (
	"github.com/spf13/pflag"
)

// parseFlags populates Config fields from command-line flags. Flags that are
// not set keep the value from earlier sources; unknown flags are ignored.
func parseFlags(cfg *Config, args []string) {
	fs := pflag.NewFlagSet("gophchat", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true

	fs.StringP("config", "c", "", "path to config file")
	fs.StringVarP(&cfg.ServerURL, "server", "s", cfg.ServerURL, "base URL of the chat backend")
	fs.DurationVarP(&cfg.RequestTimeout, "timeout", "t", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.StorageBackend, "storage", cfg.StorageBackend, "session storage backend (sqlite|redis)")
	fs.StringVarP(&cfg.DatabasePath, "db", "d", cfg.DatabasePath, "SQLite database path")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis host:port")
	fs.StringVar(&cfg.RedisPassword, "redis-password", cfg.RedisPassword, "Redis password")
	fs.IntVar(&cfg.RedisDB, "redis-db", cfg.RedisDB, "Redis database number")
	fs.StringVar(&cfg.RedisPrefix, "redis-prefix", cfg.RedisPrefix, "key prefix inside Redis")
	fs.StringVar(&cfg.LogMode, "log-mode", cfg.LogMode, "log mode (development|production)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
