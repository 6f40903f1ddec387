package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/18gaurav2021/portfolio/internal/contact"
	"github.com/18gaurav2021/portfolio/internal/sections"
)

const (
	DefaultIdle          = 30 * time.Minute
	DefaultSweepInterval = time.Minute
	DefaultMaxSessions   = 10000
)

// RevealFunc is told when a section first comes into view for a session.
type RevealFunc func(sessionID, section string)

type Option func(*Store)

func WithClock(clock clockwork.Clock) Option {
	return func(s *Store) { s.clock = clock }
}

// WithIdle sets how long an untouched session lives.
func WithIdle(d time.Duration) Option {
	return func(s *Store) { s.idle = d }
}

// WithMaxSessions caps live sessions. Creating one past the cap evicts
// the least recently seen session. Zero or less means no cap.
func WithMaxSessions(n int) Option {
	return func(s *Store) { s.max = n }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) { s.log = logger }
}

// WithContactOptions configures every session's contact controller.
func WithContactOptions(opts ...contact.Option) Option {
	return func(s *Store) { s.contactOpts = append(s.contactOpts, opts...) }
}

func WithRevealHook(fn RevealFunc) Option {
	return func(s *Store) { s.onReveal = fn }
}

// Store maps session ids to live sessions.
type Store struct {
	set         *sections.Set
	clock       clockwork.Clock
	idle        time.Duration
	max         int
	log         zerolog.Logger
	contactOpts []contact.Option
	onReveal    RevealFunc

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore(set *sections.Set, opts ...Option) *Store {
	s := &Store{
		set:      set,
		clock:    clockwork.NewRealClock(),
		idle:     DefaultIdle,
		max:      DefaultMaxSessions,
		log:      zerolog.Nop(),
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns a live session and refreshes its idle timer.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if ok {
		sess.touch(s.clock.Now())
	}
	return sess, ok
}

// Ensure returns the session for id, creating a fresh one under a new id
// when id is unknown. created reports whether a new session was made.
func (s *Store) Ensure(id string) (sess *Session, created bool) {
	if sess, ok := s.Get(id); ok {
		return sess, false
	}

	newID := uuid.NewString()
	ctrlOpts := append([]contact.Option{contact.WithClock(s.clock), contact.WithLogger(s.log)}, s.contactOpts...)
	var hook func(string)
	if s.onReveal != nil {
		hook = func(section string) { s.onReveal(newID, section) }
	}
	sess = newSession(newID, s.set, contact.New(ctrlOpts...), s.clock.Now(), hook)

	s.mu.Lock()
	s.sessions[newID] = sess
	evicted := s.evictLocked(newID)
	n := len(s.sessions)
	s.mu.Unlock()

	if evicted != nil {
		evicted.Close()
		s.log.Debug().Str("session", evicted.ID).Msg("session evicted")
	}
	s.log.Debug().Str("session", newID).Int("sessions", n).Msg("session created")
	return sess, true
}

// evictLocked drops the least recently seen session other than keep when
// the store is over its cap. The caller closes the returned session.
func (s *Store) evictLocked(keep string) *Session {
	if s.max <= 0 || len(s.sessions) <= s.max {
		return nil
	}
	now := s.clock.Now()
	var oldest *Session
	var idle time.Duration
	for id, sess := range s.sessions {
		if id == keep {
			continue
		}
		if d := sess.idleSince(now); oldest == nil || d > idle {
			oldest, idle = sess, d
		}
	}
	if oldest != nil {
		delete(s.sessions, oldest.ID)
	}
	return oldest
}

// Remove closes and forgets the session for id, if any.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if ok {
		sess.Close()
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep closes sessions idle for longer than the configured limit and
// returns how many were removed.
func (s *Store) Sweep() int {
	now := s.clock.Now()
	var expired []*Session

	s.mu.Lock()
	for id, sess := range s.sessions {
		if sess.idleSince(now) > s.idle {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.Close()
	}
	if len(expired) > 0 {
		s.log.Debug().Int("expired", len(expired)).Msg("sessions swept")
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done, then closes all sessions.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()
	defer s.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			s.Sweep()
		}
	}
}

// Close ends every session.
func (s *Store) Close() {
	s.mu.Lock()
	all := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, sess := range all {
		sess.Close()
	}
}
