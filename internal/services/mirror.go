package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fastygo/quantix/repository"
)

// ConnectionHealth abstracts the connection monitor functionality.
type ConnectionHealth interface {
	IsOnline() bool
	PresenceOnline() bool
}

// Entity names the remote collection a command targets.
type Entity string

const (
	EntityTask        Entity = "task"
	EntityProfile     Entity = "profile"
	EntitySession     Entity = "session"
	EntityJournal     Entity = "journal"
	EntityGoal        Entity = "goal"
	EntityLiveSession Entity = "live_session"
)

// Operation is the remote write to perform.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationUpsert Operation = "upsert"
	OperationClose  Operation = "close"
	OperationDelete Operation = "delete"
)

// Command is one fire-and-forget remote write. Record carries the full
// resulting wire record, never a delta; ID names the target of a delete.
type Command struct {
	Entity    Entity
	Operation Operation
	UserID    string
	ID        string
	Record    any
	IssuedAt  time.Time
}

// Dispatcher accepts commands without blocking the caller.
type Dispatcher interface {
	Dispatch(cmd Command)
}

// RemoteStores groups the remote mirror ports. Any nil port silently drops
// the commands addressed to it.
type RemoteStores struct {
	Tasks    repository.TaskRepository
	Profiles repository.ProfileRepository
	Sessions repository.SessionRepository
	Journal  repository.JournalRepository
	Goals    repository.GoalRepository
	Live     repository.LiveSessionRepository
}

// MirrorConfig controls the mirror queue.
type MirrorConfig struct {
	QueueSize int
	Timeout   time.Duration
}

// Mirror applies remote writes on a single background worker. Failures are
// logged and abandoned; nothing is retried and nothing flows back into local state.
type Mirror struct {
	remote  RemoteStores
	monitor ConnectionHealth
	logger  *zap.Logger
	cfg     MirrorConfig

	mu      sync.RWMutex
	queue   chan Command
	closed  bool
	started bool
	done    chan struct{}
}

func NewMirror(remote RemoteStores, monitor ConnectionHealth, logger *zap.Logger, cfg MirrorConfig) *Mirror {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mirror{
		remote:  remote,
		monitor: monitor,
		logger:  logger,
		cfg:     cfg,
		queue:   make(chan Command, cfg.QueueSize),
		done:    make(chan struct{}),
	}
}

// Start launches the worker.
func (m *Mirror) Start() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started || m.closed {
		return
	}
	m.started = true
	go m.run()
	m.logger.Info("mirror worker started", zap.Int("queue_size", m.cfg.QueueSize))
}

// Stop refuses new commands, lets the worker drain what is queued and waits
// for it or for ctx, whichever comes first.
func (m *Mirror) Stop(ctx context.Context) {
	if m == nil {
		return
	}
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	close(m.queue)
	started := m.started
	m.mu.Unlock()

	if !started {
		return
	}
	select {
	case <-m.done:
		m.logger.Info("mirror worker stopped")
	case <-ctx.Done():
		m.logger.Warn("mirror worker stop timed out", zap.Int("pending", len(m.queue)))
	}
}

// Dispatch enqueues cmd. It never blocks: a full or closed queue drops the command.
func (m *Mirror) Dispatch(cmd Command) {
	if m == nil {
		return
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		m.logger.Debug("mirror closed, dropping command",
			zap.String("entity", string(cmd.Entity)),
			zap.String("operation", string(cmd.Operation)))
		return
	}
	select {
	case m.queue <- cmd:
	default:
		m.logger.Warn("mirror queue full, dropping command",
			zap.String("entity", string(cmd.Entity)),
			zap.String("operation", string(cmd.Operation)))
	}
}

// Pending returns the number of queued commands.
func (m *Mirror) Pending() int {
	if m == nil {
		return 0
	}
	return len(m.queue)
}

func (m *Mirror) run() {
	defer close(m.done)
	for cmd := range m.queue {
		m.handle(cmd)
	}
}

func (m *Mirror) handle(cmd Command) {
	if !m.reachable(cmd.Entity) {
		m.logger.Debug("remote offline, dropping command",
			zap.String("entity", string(cmd.Entity)),
			zap.String("operation", string(cmd.Operation)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.Timeout)
	defer cancel()

	if err := m.process(ctx, cmd); err != nil {
		m.logger.Warn("remote write failed",
			zap.String("entity", string(cmd.Entity)),
			zap.String("operation", string(cmd.Operation)),
			zap.String("id", cmd.ID),
			zap.Error(err))
	}
}

func (m *Mirror) reachable(entity Entity) bool {
	if m.monitor == nil {
		return true
	}
	if entity == EntityLiveSession {
		return m.monitor.PresenceOnline()
	}
	return m.monitor.IsOnline()
}

func (m *Mirror) process(ctx context.Context, cmd Command) error {
	switch cmd.Entity {
	case EntityTask:
		if m.remote.Tasks == nil {
			return nil
		}
		if cmd.Operation == OperationDelete {
			return m.remote.Tasks.Delete(ctx, cmd.UserID, cmd.ID)
		}
		rec, ok := cmd.Record.(repository.TaskRecord)
		if !ok {
			return fmt.Errorf("task command carries %T", cmd.Record)
		}
		switch cmd.Operation {
		case OperationCreate:
			return m.remote.Tasks.Insert(ctx, rec)
		case OperationUpdate:
			return m.remote.Tasks.Update(ctx, rec)
		}

	case EntityProfile:
		if m.remote.Profiles == nil {
			return nil
		}
		rec, ok := cmd.Record.(repository.ProfileRecord)
		if !ok {
			return fmt.Errorf("profile command carries %T", cmd.Record)
		}
		return m.remote.Profiles.Upsert(ctx, rec)

	case EntitySession:
		if m.remote.Sessions == nil {
			return nil
		}
		rec, ok := cmd.Record.(repository.SessionRecord)
		if !ok {
			return fmt.Errorf("session command carries %T", cmd.Record)
		}
		switch cmd.Operation {
		case OperationCreate:
			return m.remote.Sessions.Insert(ctx, rec)
		case OperationClose:
			return m.remote.Sessions.Close(ctx, rec)
		}

	case EntityJournal:
		if m.remote.Journal == nil {
			return nil
		}
		if cmd.Operation == OperationDelete {
			return m.remote.Journal.Delete(ctx, cmd.UserID, cmd.ID)
		}
		rec, ok := cmd.Record.(repository.JournalRecord)
		if !ok {
			return fmt.Errorf("journal command carries %T", cmd.Record)
		}
		return m.remote.Journal.Upsert(ctx, rec)

	case EntityGoal:
		if m.remote.Goals == nil {
			return nil
		}
		if cmd.Operation == OperationDelete {
			return m.remote.Goals.Delete(ctx, cmd.UserID, cmd.ID)
		}
		rec, ok := cmd.Record.(repository.GoalRecord)
		if !ok {
			return fmt.Errorf("goal command carries %T", cmd.Record)
		}
		return m.remote.Goals.Upsert(ctx, rec)

	case EntityLiveSession:
		if m.remote.Live == nil {
			return nil
		}
		if cmd.Operation == OperationDelete {
			return m.remote.Live.Delete(ctx, cmd.UserID)
		}
		rec, ok := cmd.Record.(repository.LiveSession)
		if !ok {
			return fmt.Errorf("live session command carries %T", cmd.Record)
		}
		return m.remote.Live.Save(ctx, &rec)

	default:
		return fmt.Errorf("unsupported entity %s", cmd.Entity)
	}
	return fmt.Errorf("unsupported operation %s for %s", cmd.Operation, cmd.Entity)
}
