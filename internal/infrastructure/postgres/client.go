package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/fastygo/quantix/internal/config"
)

const applicationName = "quantixd"

// ErrNoDatabaseURL is returned when the mirror is enabled without a DSN.
var ErrNoDatabaseURL = errors.New("postgres: database url is empty")

// NewPool dials the remote mirror and pings it once within timeout.
// Callers treat an error as "remote unavailable", never as fatal.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, timeout time.Duration, logger *zap.Logger) (*pgxpool.Pool, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	poolCfg, err := poolConfig(cfg, timeout)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, poolCfg.ConnConfig.ConnectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("remote mirror connected",
		zap.String("host", poolCfg.ConnConfig.Host),
		zap.String("db", poolCfg.ConnConfig.Database),
		zap.Int32("max_conns", poolCfg.MaxConns))
	return pool, nil
}

// poolConfig turns the DSN into a small pool sized for one device. The
// daemon only ever issues a handful of concurrent mirror writes.
func poolConfig(cfg config.DatabaseConfig, timeout time.Duration) (*pgxpool.Config, error) {
	if cfg.URL == "" {
		return nil, ErrNoDatabaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		poolCfg.MinConns = min(int32(cfg.MaxIdleConns), poolCfg.MaxConns)
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	poolCfg.ConnConfig.ConnectTimeout = timeout
	poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	return poolCfg, nil
}

// Close releases the pool. A nil pool is a no-op.
func Close(pool *pgxpool.Pool, logger *zap.Logger) {
	if pool == nil {
		return
	}
	pool.Close()
	if logger != nil {
		logger.Info("remote mirror pool closed")
	}
}
