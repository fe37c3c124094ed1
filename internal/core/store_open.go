package core

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/JonMunkholm/dashboard/internal/config"
	"github.com/JonMunkholm/dashboard/internal/logging"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OpenStore builds the store selected by cfg.Store.Kind. For postgres it
// connects a pool sized from cfg.Database, verifies the connection and
// applies pending migrations. The returned close function releases the
// pool and is safe to call for the memory store.
//
// When cfg.Store.Seed is set, the demo applicants are loaded into an empty
// store.
func OpenStore(ctx context.Context, cfg *config.Config) (Store, func(), error) {
	log := logging.FromContext(ctx)

	var (
		store   Store
		closeFn = func() {}
	)

	switch cfg.Store.Kind {
	case config.StoreMemory:
		store = NewMemoryStore()
		log.Info("using in-memory store")

	case config.StorePostgres:
		poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse database URL: %w", err)
		}
		poolConfig.MaxConns = int32(cfg.Database.MaxConns)
		poolConfig.MinConns = int32(cfg.Database.MinConns)
		poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime
		poolConfig.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}

		if u, err := url.Parse(cfg.Database.URL); err == nil {
			log.Info("connected to database", "name", strings.TrimPrefix(u.Path, "/"))
		}

		if err := Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		store, closeFn = NewPostgresStore(pool), pool.Close

	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store.Kind)
	}

	if cfg.Store.Seed {
		n, err := SeedIfEmpty(ctx, store, time.Now())
		if err != nil {
			closeFn()
			return nil, nil, err
		}
		if n > 0 {
			log.Info("seeded demo applicants", "count", n)
		}
	}

	return store, closeFn, nil
}
