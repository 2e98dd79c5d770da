// Package client contains client-side building blocks for the gophchat CLI.
//
// # Overview
//
// The package provides:
//  1. The auth backend API contract (see the Client interface): Signup, Login
//     and Logout.
//  2. A JSON-over-HTTP implementation (see HTTPClient). Every request is a
//     POST with Content-Type application/json and an X-Request-ID header; the
//     same id is attached to the log context.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens an
//     SQLite database and applies the embedded goose migrations.
//
// # Response handling
//
// The backend answers with a JSON object. An object carrying a non-empty
// "error" field is a failure regardless of the HTTP status; any other object
// with a 2xx status is the session record.
//
// # Error Handling
//
// Failures are classified as:
//   - *RemoteError: the backend refused the request. Message holds the
//     backend's "error" text or, without one, the HTTP status text.
//     errors.Is(err, ErrUnauthorized) holds for 401 and 403.
//   - *TransportError: the backend was not reached or its answer could not be
//     read. errors.Is(err, ErrUnavailable) holds when no response arrived and
//     errors.Is(err, ErrMalformedResponse) when the body was not a JSON object.
//
// All operations accept context.Context and honor cancellation and timeouts.
package client
