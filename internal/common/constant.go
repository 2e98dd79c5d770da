// Package common contains shared constants and helpers used across the
// gophchat client packages.
package common

// SessionStorageKey is the durable storage key holding the current session record.
const SessionStorageKey = "chat-user"

// RequestIDHeaderName is the HTTP header carrying a per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"

// API paths of the authentication backend, relative to the configured server URL.
const (
	SignupPath = "/api/auth/signup"
	LoginPath  = "/api/auth/login"
	LogoutPath = "/api/auth/logout"
)
