package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophchat/internal/client/client"
	"github.com/dmitrijs2005/gophchat/internal/client/config"
	"github.com/dmitrijs2005/gophchat/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophchat/internal/filex"
	"github.com/redis/go-redis/v9"
)

// openStorage returns the durable store selected by c.StorageBackend along
// with a function that releases it.
func openStorage(ctx context.Context, c *config.Config) (metadata.Repository, func() error, error) {
	switch c.StorageBackend {
	case config.StorageSQLite, "":
		if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
			return nil, nil, err
		}
		db, err := client.InitDatabase(ctx, c.DatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("error initializing database: %w", err)
		}
		return metadata.NewSQLiteRepository(db), db.Close, nil

	case config.StorageRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("error connecting to redis at %s: %w", c.RedisAddr, err)
		}
		return metadata.NewRedisRepository(rdb, c.RedisPrefix), rdb.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
}
