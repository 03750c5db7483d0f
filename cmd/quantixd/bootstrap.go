package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	goRedis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fastygo/quantix/internal/config"
	pgInfra "github.com/fastygo/quantix/internal/infrastructure/postgres"
	redisInfra "github.com/fastygo/quantix/internal/infrastructure/redis"
	"github.com/fastygo/quantix/internal/services"
	"github.com/fastygo/quantix/pkg/logger"
	"github.com/fastygo/quantix/repository/postgres"
	redisRepo "github.com/fastygo/quantix/repository/redis"
)

func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	return cfg, zapLogger, nil
}

// remotes holds whichever mirror backends answered at startup. Either may be nil.
type remotes struct {
	pool  *pgxpool.Pool
	redis *goRedis.Client
}

// connectRemotes dials the mirror. Failures are logged and leave the
// backend nil so the daemon starts in degraded mode.
func connectRemotes(ctx context.Context, cfg *config.Config, log *zap.Logger) remotes {
	var r remotes
	if !cfg.Remote.Enabled {
		log.Info("remote mirror disabled")
		return r
	}

	pool, err := pgInfra.NewPool(ctx, cfg.Database, cfg.Remote.Timeout, log)
	if err != nil {
		log.Warn("postgres unavailable, continuing local-only", zap.Error(err))
	} else {
		r.pool = pool
	}

	client, err := redisInfra.NewClient(cfg.Redis, cfg.Remote.Timeout)
	if err != nil {
		log.Warn("redis unavailable, live presence disabled", zap.Error(err))
	} else {
		r.redis = client
	}
	return r
}

// stores builds the repositories for the reachable backends only, so an
// absent backend stays a nil interface.
func (r remotes) stores(cfg *config.Config) services.RemoteStores {
	var out services.RemoteStores
	if r.pool != nil {
		out.Tasks = postgres.NewTaskRepository(r.pool)
		out.Profiles = postgres.NewProfileRepository(r.pool)
		out.Sessions = postgres.NewSessionRepository(r.pool)
		out.Journal = postgres.NewJournalRepository(r.pool)
		out.Goals = postgres.NewGoalRepository(r.pool)
	}
	if r.redis != nil {
		out.Live = redisRepo.NewLiveSessionRepository(r.redis, cfg.Focus.LiveSessionTTL)
	}
	return out
}

func (r remotes) close(log *zap.Logger) error {
	pgInfra.Close(r.pool, log)
	if r.redis != nil {
		return r.redis.Close()
	}
	return nil
}
