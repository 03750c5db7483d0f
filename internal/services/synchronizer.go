package services

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/internal/clock"
	"github.com/fastygo/quantix/internal/focus"
	"github.com/fastygo/quantix/internal/infrastructure/localstore"
	"github.com/fastygo/quantix/internal/progression"
	"github.com/fastygo/quantix/internal/streak"
	appLogger "github.com/fastygo/quantix/pkg/logger"
)

// LocalStore is the authoritative keyed-blob cache.
type LocalStore interface {
	Load(key localstore.Key, dst any) error
	SaveAll(values map[localstore.Key]any) error
}

// SyncConfig tunes the synchronizer. Zero values pick the defaults.
type SyncConfig struct {
	DeviceID        string
	Timezone        string
	DailyRule       streak.DailyRule
	ProfileDebounce time.Duration
	TickInterval    time.Duration

	Clock     clock.Clock
	Scheduler Scheduler
	NewID     func() string
}

// Synchronizer owns the local HUD state. Every mutation is computed in full,
// persisted locally and only then handed to the mirror as fire-and-forget
// commands. Remote state feeds back only through Hydrate.
type Synchronizer struct {
	store  LocalStore
	remote RemoteStores
	mirror Dispatcher
	health ConnectionHealth
	logger *zap.Logger
	cfg    SyncConfig

	mu    sync.Mutex
	state state

	profileWrite    *Debouncer
	ticker          *focus.Ticker
	live            atomic.Pointer[domain.SessionState]
	remoteAvailable atomic.Bool
}

func NewSynchronizer(
	store LocalStore,
	remote RemoteStores,
	mirror Dispatcher,
	health ConnectionHealth,
	logger *zap.Logger,
	cfg SyncConfig,
) *Synchronizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.System{}
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	if cfg.ProfileDebounce <= 0 {
		cfg.ProfileDebounce = 1500 * time.Millisecond
	}
	if cfg.DailyRule == "" {
		cfg.DailyRule = streak.DailyRuleCreated
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}

	s := &Synchronizer{
		store:        store,
		remote:       remote,
		mirror:       mirror,
		health:       health,
		logger:       logger.With(zap.String("device_id", cfg.DeviceID)),
		cfg:          cfg,
		state:        defaultState(cfg.Timezone),
		profileWrite: NewDebouncer(cfg.ProfileDebounce, cfg.Scheduler),
	}
	s.ticker = focus.NewTicker(cfg.TickInterval, cfg.Clock, s.publishLive)
	return s
}

// DeviceID is the identity every remote record is scoped to.
func (s *Synchronizer) DeviceID() string {
	return s.cfg.DeviceID
}

// RemoteAvailable is the startup connectivity flag set by Hydrate.
func (s *Synchronizer) RemoteAvailable() bool {
	return s.remoteAvailable.Load()
}

// Apply runs m against a copy of the current state, persists the copy and
// publishes it. A rejected mutation leaves state untouched. A local store
// failure is logged and the new state is still kept in memory.
func (s *Synchronizer) Apply(ctx context.Context, m Mutation) (Outcome, error) {
	if m == nil {
		return Outcome{}, domain.ErrInvalidPayload
	}
	log := appLogger.WithContext(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.cfg.Clock.Now()
	next := s.state.clone()
	var eff effects
	if err := m.apply(&next, env{now: now, deviceID: s.cfg.DeviceID, newID: s.cfg.NewID}, &eff); err != nil {
		return Outcome{}, err
	}
	next.profile.RankTitle = progression.RankTitle(next.profile.Level)

	durable := s.persist(log, &next, eff.dirty)
	s.state = next

	if s.mirror != nil {
		for _, cmd := range eff.commands {
			cmd.UserID = s.cfg.DeviceID
			cmd.IssuedAt = now
			s.mirror.Dispatch(cmd)
		}
	}
	if eff.profile {
		s.scheduleProfileWrite(next.profile, now)
	}
	s.updateTicker(eff.focus, next.focus)

	out := eff.outcome
	out.Profile = next.profile
	out.Focus = next.focus
	out.Durable = durable
	return out, nil
}

func (s *Synchronizer) persist(log *zap.Logger, next *state, keys []localstore.Key) bool {
	if len(keys) == 0 {
		return true
	}
	if s.store == nil {
		return false
	}
	values := make(map[localstore.Key]any, len(keys))
	for _, k := range keys {
		values[k] = next.blob(k)
	}
	if err := s.store.SaveAll(values); err != nil {
		log.Error("local store write failed, keeping state in memory",
			zap.Any("keys", keys),
			zap.Error(err))
		return false
	}
	return true
}

// scheduleProfileWrite replaces any pending profile mirror write with one
// carrying the latest profile.
func (s *Synchronizer) scheduleProfileWrite(p domain.UserProfile, now time.Time) {
	if s.mirror == nil {
		return
	}
	rec := profileRecord(s.cfg.DeviceID, p, now)
	s.profileWrite.Schedule(func() {
		s.mirror.Dispatch(Command{
			Entity:    EntityProfile,
			Operation: OperationUpsert,
			UserID:    s.cfg.DeviceID,
			ID:        s.cfg.DeviceID,
			Record:    rec,
			IssuedAt:  now,
		})
	})
}

func (s *Synchronizer) updateTicker(change focusChange, st domain.SessionState) {
	switch change {
	case focusRunning:
		snapshot := st
		s.live.Store(&snapshot)
		since := s.cfg.Clock.Now()
		if st.StartTime != nil {
			since = *st.StartTime
		}
		s.ticker.Run(st.Accumulated, since)
	case focusHalted:
		s.ticker.Cancel()
		s.live.Store(nil)
	}
}

// publishLive runs on the ticker goroutine and must not take s.mu.
func (s *Synchronizer) publishLive(elapsed int) {
	st := s.live.Load()
	if st == nil || s.mirror == nil {
		return
	}
	s.mirror.Dispatch(Command{
		Entity:    EntityLiveSession,
		Operation: OperationUpsert,
		UserID:    s.cfg.DeviceID,
		ID:        st.SessionID,
		Record:    liveSession(s.cfg.DeviceID, *st, elapsed, s.cfg.Clock.Now()),
		IssuedAt:  s.cfg.Clock.Now(),
	})
}

// Flush hands a pending debounced profile write to the mirror immediately.
func (s *Synchronizer) Flush() {
	s.profileWrite.Flush()
}

// Close stops the live ticker and flushes the pending profile write. When
// ctx is already done the pending write is dropped instead.
func (s *Synchronizer) Close(ctx context.Context) error {
	if s.ticker.Active() {
		s.logger.Info("focus ticker stopped with a session in progress")
	}
	s.ticker.Cancel()
	s.live.Store(nil)
	if err := ctx.Err(); err != nil {
		if s.profileWrite.Pending() {
			s.logger.Warn("pending profile write dropped on shutdown", zap.Error(err))
		}
		s.profileWrite.Cancel()
		return err
	}
	s.Flush()
	return nil
}

// ProfileWritePending reports whether a debounced profile write is waiting.
func (s *Synchronizer) ProfileWritePending() bool {
	return s.profileWrite.Pending()
}

func (s *Synchronizer) Profile() domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.profile
}

// Tasks returns the tasks of listID, or every task when listID is empty.
func (s *Synchronizer) Tasks(listID string) []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	if listID == "" {
		return slices.Clone(s.state.tasks)
	}
	out := make([]domain.Task, 0, len(s.state.tasks))
	for _, t := range s.state.tasks {
		if t.ListID == listID {
			out = append(out, t)
		}
	}
	return out
}

func (s *Synchronizer) Lists() []domain.TaskList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.lists)
}

// ListStats returns dashboard totals for every known list.
func (s *Synchronizer) ListStats() map[string]domain.ListStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := streak.ListStats(s.state.tasks, s.cfg.DailyRule, s.cfg.Clock.Now(), s.location())
	for _, l := range s.state.lists {
		if _, ok := stats[l.ID]; !ok {
			stats[l.ID] = domain.ListStats{}
		}
	}
	return stats
}

func (s *Synchronizer) Settings() domain.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.settings
}

func (s *Synchronizer) Sessions() []domain.SessionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.sessions)
}

func (s *Synchronizer) Journal() []domain.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.journal)
}

func (s *Synchronizer) Goals() []domain.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.goals)
}

// FocusView is the focus state plus its live display value.
type FocusView struct {
	State          domain.SessionState `json:"state"`
	ElapsedSeconds int                 `json:"elapsedSeconds"`
}

func (s *Synchronizer) Focus() FocusView {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state.focus
	return FocusView{State: st, ElapsedSeconds: focus.Elapsed(st, s.cfg.Clock.Now())}
}

// Streak recomputes the streak view from the full history.
func (s *Synchronizer) Streak() streak.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return streak.Calculate(s.state.tasks, s.state.sessions, streak.Options{
		Location: s.location(),
		Now:      s.cfg.Clock.Now(),
		ResetAt:  s.state.settings.StreakResetAt,
	})
}

// location resolves the configured day boundary. Caller holds s.mu.
func (s *Synchronizer) location() *time.Location {
	if s.state.settings.Timezone != "" {
		if loc, err := clock.LoadLocation(s.state.settings.Timezone); err == nil {
			return loc
		}
	}
	return clock.LocationOrUTC(s.cfg.Timezone)
}

func isNotFound(err error) bool {
	return errors.Is(err, localstore.ErrNotFound)
}
