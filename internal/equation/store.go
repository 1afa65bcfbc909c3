package equation

import (
	"context"
	"errors"
	"sync"
	"time"

	"bhaskara/internal/form"

	"github.com/google/uuid"
)

var (
	ErrFormNotFound = errors.New("form not found")
	ErrTooManyForms = errors.New("form session limit reached")
)

const (
	// DefaultFormLimit bounds open sessions when no limit is configured.
	DefaultFormLimit = 1024
	// DefaultIdleTimeout is how long an untouched session survives.
	DefaultIdleTimeout = 30 * time.Minute
)

// session pairs a form with the alerts raised during the current action.
// lastUsed is guarded by the store's mutex, the rest by mu.
type session struct {
	mu       sync.Mutex
	form     *form.Form
	alerts   []form.Alert
	lastUsed time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIdleTimeout sets how long a session may go without an action before
// it is closed. d <= 0 keeps DefaultIdleTimeout.
func WithIdleTimeout(d time.Duration) StoreOption {
	return func(s *Store) {
		if d > 0 {
			s.idleTimeout = d
		}
	}
}

// withClock replaces time.Now in tests.
func withClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// Store keeps form sessions in memory. Each session is one screen; actions
// on the same session run one at a time. Sessions idle for longer than the
// idle timeout are closed on the next Create or Do.
type Store struct {
	mu          sync.Mutex
	sessions    map[string]*session
	limit       int
	idleTimeout time.Duration
	now         func() time.Time
}

// NewStore returns an empty store. limit <= 0 selects DefaultFormLimit.
func NewStore(limit int, opts ...StoreOption) *Store {
	if limit <= 0 {
		limit = DefaultFormLimit
	}
	s := &Store{
		sessions:    make(map[string]*session),
		limit:       limit,
		idleTimeout: DefaultIdleTimeout,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create opens a new Idle form and returns its ID and snapshot.
func (s *Store) Create() (string, form.Snapshot, error) {
	sess := &session{}
	sess.form = form.New(form.NotifierFunc(func(a form.Alert) {
		sess.alerts = append(sess.alerts, a)
	}))

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictIdle(now)

	if len(s.sessions) >= s.limit {
		return "", form.Snapshot{}, ErrTooManyForms
	}

	id := uuid.NewString()
	sess.lastUsed = now
	s.sessions[id] = sess
	return id, sess.form.Snapshot(), nil
}

// Do runs fn against the form with the given ID and returns the alerts fn
// raised and the resulting snapshot.
func (s *Store) Do(id string, fn func(*form.Form)) ([]form.Alert, form.Snapshot, error) {
	s.mu.Lock()
	now := s.now()
	s.evictIdle(now)
	sess, ok := s.sessions[id]
	if ok {
		sess.lastUsed = now
	}
	s.mu.Unlock()
	if !ok {
		return nil, form.Snapshot{}, ErrFormNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.alerts = nil
	fn(sess.form)
	alerts := sess.alerts
	sess.alerts = nil

	return alerts, sess.form.Snapshot(), nil
}

// evictIdle closes sessions unused since now minus the idle timeout.
// s.mu must be held.
func (s *Store) evictIdle(now time.Time) {
	cutoff := now.Add(-s.idleTimeout)

	var n int64
	for id, sess := range s.sessions {
		if sess.lastUsed.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	if n > 0 {
		activeFormsCounter.Add(context.Background(), -n)
	}
}

// Delete closes a session.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrFormNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len returns the number of open sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
