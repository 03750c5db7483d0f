package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	redislib "github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fastygo/quantix/internal/infrastructure/localstore"
)

// Monitor tracks whether the remote mirror and the local cache are reachable.
// A nil pool or client is simply reported offline.
type Monitor struct {
	pg    *pgxpool.Pool
	redis *redislib.Client
	local *localstore.Store

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	cron     *cron.Cron
	logger   *zap.Logger
}

func New(pg *pgxpool.Pool, redis *redislib.Client, local *localstore.Store, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval < time.Second {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Monitor{
		pg:       pg,
		redis:    redis,
		local:    local,
		interval: interval,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger,
	}

	schedule := fmt.Sprintf("@every %ds", int(interval.Seconds()))
	if _, err := m.cron.AddFunc(schedule, m.Refresh); err != nil {
		logger.Error("monitor schedule rejected", zap.String("schedule", schedule), zap.Error(err))
	}
	return m
}

// Start probes once synchronously, so the startup status is known before any
// caller asks, then keeps refreshing on schedule.
func (m *Monitor) Start() {
	m.Refresh()
	m.cron.Start()
}

func (m *Monitor) Stop() {
	<-m.cron.Stop().Done()
}

// IsOnline reports whether the remote record store is reachable.
func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.PostgreSQL
}

// PresenceOnline reports whether live focus presence can be published.
func (m *Monitor) PresenceOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Redis
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Refresh re-probes every dependency.
func (m *Monitor) Refresh() {
	localOK, localKeys := m.checkLocal()
	status := Status{
		PostgreSQL: m.checkPostgres(),
		Redis:      m.checkRedis(),
		LocalStore: localOK,
		LocalKeys:  localKeys,
		LastCheck:  time.Now(),
	}

	m.mu.Lock()
	previous := m.status
	m.status = status
	m.mu.Unlock()

	if !previous.LastCheck.IsZero() && previous.PostgreSQL != status.PostgreSQL {
		m.logger.Info("remote mirror availability changed", zap.Bool("online", status.PostgreSQL))
	}
}

func (m *Monitor) checkPostgres() bool {
	if m.pg == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return m.pg.Ping(ctx) == nil
}

func (m *Monitor) checkRedis() bool {
	if m.redis == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return m.redis.Ping(ctx).Err() == nil
}

func (m *Monitor) checkLocal() (bool, int) {
	if m.local == nil {
		return false, 0
	}
	size, err := m.local.Size()
	if err != nil {
		m.logger.Warn("local store check failed", zap.Error(err))
		return false, size
	}
	return true, size
}
