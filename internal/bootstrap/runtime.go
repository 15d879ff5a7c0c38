// Package bootstrap wires up runtime dependencies for the server and tools.
package bootstrap

import (
	"fmt"

	"stockroom/internal/cache"
	"stockroom/internal/config"
	"stockroom/internal/database"
	"stockroom/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedBuiltIns bool
}

// InitRuntime connects to DB and Redis and optionally runs built-in seeding.
// The Redis client may be nil when the cache is unreachable; the app degrades
// to uncached operation.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedBuiltIns {
		if err := seed.SeedBuiltins(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed built-in users and items: %w", err)
		}
	}

	return db, r, nil
}
