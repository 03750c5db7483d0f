package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/internal/infrastructure/localstore"
	"github.com/fastygo/quantix/repository"
)

var errRemoteDown = errors.New("remote down")

type fakeHealth struct {
	online   bool
	presence bool
}

func (h fakeHealth) IsOnline() bool       { return h.online }
func (h fakeHealth) PresenceOnline() bool { return h.presence }

type recordingDispatcher struct {
	mu   sync.Mutex
	cmds []Command
}

func (d *recordingDispatcher) Dispatch(cmd Command) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cmds = append(d.cmds, cmd)
}

func (d *recordingDispatcher) byEntity(e Entity) []Command {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []Command
	for _, c := range d.cmds {
		if c.Entity == e {
			out = append(out, c)
		}
	}
	return out
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type failingStore struct{}

func (failingStore) Load(localstore.Key, any) error        { return localstore.ErrNotFound }
func (failingStore) SaveAll(map[localstore.Key]any) error { return errors.New("disk full") }

type fakeTaskRepo struct {
	mu       sync.Mutex
	list     []repository.TaskRecord
	err      error
	inserted []repository.TaskRecord
	updated  []repository.TaskRecord
	deleted  []string
}

func (r *fakeTaskRepo) List(context.Context, string) ([]repository.TaskRecord, error) {
	return r.list, r.err
}

func (r *fakeTaskRepo) Insert(_ context.Context, t repository.TaskRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.inserted = append(r.inserted, t)
	return nil
}

func (r *fakeTaskRepo) Update(_ context.Context, t repository.TaskRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.updated = append(r.updated, t)
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, _ string, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeTaskRepo) insertedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.inserted)
}

type fakeProfileRepo struct {
	mu      sync.Mutex
	profile *repository.ProfileRecord
	err     error
	upserts []repository.ProfileRecord
}

func (r *fakeProfileRepo) Get(context.Context, string) (*repository.ProfileRecord, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return r.profile, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, p repository.ProfileRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserts = append(r.upserts, p)
	return nil
}

type fakeSessionRepo struct {
	list []repository.SessionRecord
	err  error
}

func (r *fakeSessionRepo) List(context.Context, string) ([]repository.SessionRecord, error) {
	return r.list, r.err
}
func (r *fakeSessionRepo) Insert(context.Context, repository.SessionRecord) error { return r.err }
func (r *fakeSessionRepo) Close(context.Context, repository.SessionRecord) error  { return r.err }

type fakeLiveRepo struct {
	mu      sync.Mutex
	saved   []repository.LiveSession
	deleted int
}

func (r *fakeLiveRepo) Get(context.Context, string) (*repository.LiveSession, error) {
	return nil, nil
}

func (r *fakeLiveRepo) Save(_ context.Context, s *repository.LiveSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, *s)
	return nil
}

func (r *fakeLiveRepo) Delete(context.Context, string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted++
	return nil
}

func (r *fakeLiveRepo) Extend(context.Context, string, time.Duration) error { return nil }
