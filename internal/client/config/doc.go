// Package config loads runtime configuration for the gophchat CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or --config. JSON, YAML and TOML
//     are accepted; the format follows the file extension.
//  3. Environment variables prefixed with CHAT_. A .env file in the working
//     directory is loaded first; variables already set win over it.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-s, --server string          base URL of the chat backend
//	-t, --timeout duration       per-request timeout, e.g. 15s
//	    --storage string         session storage backend: sqlite or redis
//	-d, --db string              SQLite database path
//	    --redis-addr string      Redis host:port
//	    --redis-password string  Redis password
//	    --redis-db int           Redis database number
//	    --redis-prefix string    key prefix inside Redis
//	    --log-mode string        development or production
//
// Environment
//
//	CHAT_SERVER_URL, CHAT_REQUEST_TIMEOUT, CHAT_STORAGE, CHAT_DATABASE_PATH,
//	CHAT_REDIS_ADDR, CHAT_REDIS_PASSWORD, CHAT_REDIS_DB, CHAT_REDIS_PREFIX,
//	CHAT_LOG_MODE
//
// # File schema
//
// Durations are strings like "15s":
//
//	{
//	  "server_url": "http://127.0.0.1:5000",
//	  "request_timeout": "15s",
//	  "storage_backend": "sqlite",
//	  "database_path": "chat.db"
//	}
package config
