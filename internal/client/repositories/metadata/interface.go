// Package metadata implements the client's durable key-value storage.
//
// Two backends satisfy Repository: a local SQLite table (the default) and a
// Redis keyspace for clients that share one session store across hosts.
// Both return (nil, nil) from Get when the key is absent, treat Set as an
// upsert and Delete as idempotent. Clear removes every entry the client owns.
package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
