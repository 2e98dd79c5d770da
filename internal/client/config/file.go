package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// configFilePath extracts the value of -c/--config from args, ignoring every
// other flag.
func configFilePath(args []string) string {
	var path string

	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	fs.StringVarP(&path, "config", "c", "", "path to config file")
	_ = fs.Parse(args)

	return path
}

// parseFile overlays cfg with the keys present in the file at path.
// An empty path is a no-op; an unreadable or malformed file panics.
func parseFile(cfg *Config, path string) {
	if path == "" {
		return
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		panic(err)
	}

	if v.IsSet("server_url") {
		cfg.ServerURL = v.GetString("server_url")
	}
	if v.IsSet("request_timeout") {
		cfg.RequestTimeout = v.GetDuration("request_timeout")
	}
	if v.IsSet("storage_backend") {
		cfg.StorageBackend = v.GetString("storage_backend")
	}
	if v.IsSet("database_path") {
		cfg.DatabasePath = v.GetString("database_path")
	}
	if v.IsSet("redis_addr") {
		cfg.RedisAddr = v.GetString("redis_addr")
	}
	if v.IsSet("redis_password") {
		cfg.RedisPassword = v.GetString("redis_password")
	}
	if v.IsSet("redis_db") {
		cfg.RedisDB = v.GetInt("redis_db")
	}
	if v.IsSet("redis_prefix") {
		cfg.RedisPrefix = v.GetString("redis_prefix")
	}
	if v.IsSet("log_mode") {
		cfg.LogMode = v.GetString("log_mode")
	}
}
