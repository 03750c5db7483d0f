package services

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/internal/infrastructure/localstore"
	"github.com/fastygo/quantix/internal/progression"
	"github.com/fastygo/quantix/repository"
)

// HydrateReport describes what startup loading found.
type HydrateReport struct {
	RemoteAvailable bool             `json:"remote_available"`
	Replaced        []localstore.Key `json:"replaced"`
}

// LoadLocal reads every blob from the local store. Missing or unreadable
// blobs fall back to defaults; an unreadable one is logged.
func (s *Synchronizer) LoadLocal() {
	next := defaultState(s.cfg.Timezone)

	if s.store != nil {
		s.loadBlob(localstore.KeyProfile, &next.profile)
		s.loadBlob(localstore.KeyTasks, &next.tasks)
		s.loadBlob(localstore.KeyLists, &next.lists)
		s.loadBlob(localstore.KeySettings, &next.settings)
		s.loadBlob(localstore.KeySessions, &next.sessions)
		s.loadBlob(localstore.KeyJournal, &next.journal)
		s.loadBlob(localstore.KeyGoals, &next.goals)
	}

	next.profile.Normalize()
	next.profile.RankTitle = progression.RankTitle(next.profile.Level)
	if len(next.lists) == 0 {
		next.lists = domain.DefaultTaskLists()
	}
	if next.tasks == nil {
		next.tasks = []domain.Task{}
	}
	if next.settings.Timezone == "" {
		next.settings.Timezone = s.cfg.Timezone
	}

	s.mu.Lock()
	// Focus state is never persisted; keep whatever is running.
	next.focus = s.state.focus
	s.state = next
	s.mu.Unlock()
}

func (s *Synchronizer) loadBlob(key localstore.Key, dst any) {
	if err := s.store.Load(key, dst); err != nil && !isNotFound(err) {
		s.logger.Error("local store read failed, using defaults",
			zap.String("key", string(key)),
			zap.Error(err))
	}
}

// remoteSnapshot holds one fetch per record kind. A nil slice means the
// fetch failed or was not attempted.
type remoteSnapshot struct {
	tasks    []repository.TaskRecord
	profile  *repository.ProfileRecord
	sessions []repository.SessionRecord
	journal  []repository.JournalRecord
	goals    []repository.GoalRecord
}

// Hydrate loads the local cache and then lets each non-empty remote
// collection overwrite its local counterpart. An unreachable or empty remote
// leaves local state unchanged. It never returns a remote error.
func (s *Synchronizer) Hydrate(ctx context.Context) HydrateReport {
	s.LoadLocal()

	if s.remote.empty() || (s.health != nil && !s.health.IsOnline()) {
		s.remoteAvailable.Store(false)
		s.logger.Info("remote mirror unavailable, running local-only")
		return HydrateReport{}
	}

	snap, reached := s.fetchRemote(ctx)
	s.remoteAvailable.Store(reached)
	if !reached {
		s.logger.Warn("remote mirror unreachable, running local-only")
		return HydrateReport{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.clone()
	var replaced []localstore.Key

	if len(snap.tasks) > 0 {
		next.tasks = make([]domain.Task, 0, len(snap.tasks))
		for _, r := range snap.tasks {
			next.tasks = append(next.tasks, taskFromRecord(r))
		}
		replaced = append(replaced, localstore.KeyTasks)
	}
	if snap.profile != nil {
		next.profile = mergeProfile(next.profile, *snap.profile)
		replaced = append(replaced, localstore.KeyProfile)
	}
	if closed := closedSessions(snap.sessions); len(closed) > 0 {
		next.sessions = closed
		total := 0
		for _, r := range closed {
			total += r.DurationSeconds
		}
		next.profile.TotalHoursLogged = float64(total) / 3600
		replaced = append(replaced, localstore.KeySessions)
		if snap.profile == nil {
			replaced = append(replaced, localstore.KeyProfile)
		}
	}
	if len(snap.journal) > 0 {
		next.journal = make([]domain.JournalEntry, 0, len(snap.journal))
		for _, r := range snap.journal {
			next.journal = append(next.journal, journalFromRecord(r))
		}
		replaced = append(replaced, localstore.KeyJournal)
	}
	if len(snap.goals) > 0 {
		next.goals = make([]domain.Goal, 0, len(snap.goals))
		for _, r := range snap.goals {
			next.goals = append(next.goals, goalFromRecord(r))
		}
		replaced = append(replaced, localstore.KeyGoals)
	}

	s.persist(s.logger, &next, replaced)
	s.state = next

	s.logger.Info("hydrated from remote mirror", zap.Any("replaced", replaced))
	return HydrateReport{RemoteAvailable: true, Replaced: replaced}
}

// fetchRemote reads every collection concurrently. reached is false only
// when every attempted fetch failed.
func (s *Synchronizer) fetchRemote(ctx context.Context) (remoteSnapshot, bool) {
	var (
		snap      remoteSnapshot
		attempted atomic.Int32
		failed    atomic.Int32
	)
	id := s.cfg.DeviceID
	g, gctx := errgroup.WithContext(ctx)

	fetch := func(kind string, fn func(context.Context) error) {
		attempted.Add(1)
		g.Go(func() error {
			if err := fn(gctx); err != nil {
				failed.Add(1)
				s.logger.Warn("remote fetch failed", zap.String("kind", kind), zap.Error(err))
			}
			// Failures are absorbed so one kind cannot cancel the others.
			return nil
		})
	}

	if s.remote.Tasks != nil {
		fetch("tasks", func(ctx context.Context) (err error) {
			snap.tasks, err = s.remote.Tasks.List(ctx, id)
			return err
		})
	}
	if s.remote.Profiles != nil {
		fetch("profile", func(ctx context.Context) error {
			p, err := s.remote.Profiles.Get(ctx, id)
			if errors.Is(err, domain.ErrProfileNotFound) {
				return nil
			}
			snap.profile = p
			return err
		})
	}
	if s.remote.Sessions != nil {
		fetch("sessions", func(ctx context.Context) (err error) {
			snap.sessions, err = s.remote.Sessions.List(ctx, id)
			return err
		})
	}
	if s.remote.Journal != nil {
		fetch("journal", func(ctx context.Context) (err error) {
			snap.journal, err = s.remote.Journal.List(ctx, id)
			return err
		})
	}
	if s.remote.Goals != nil {
		fetch("goals", func(ctx context.Context) (err error) {
			snap.goals, err = s.remote.Goals.List(ctx, id)
			return err
		})
	}

	_ = g.Wait()
	return snap, attempted.Load() > failed.Load()
}

func closedSessions(records []repository.SessionRecord) []domain.SessionRecord {
	out := make([]domain.SessionRecord, 0, len(records))
	for _, r := range records {
		if r.EndedAt == nil {
			continue
		}
		out = append(out, sessionFromRecord(r))
	}
	return out
}

func (r RemoteStores) empty() bool {
	return r.Tasks == nil && r.Profiles == nil && r.Sessions == nil && r.Journal == nil && r.Goals == nil
}
