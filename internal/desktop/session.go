package desktop

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionTTL is used when SessionsConfig.TTL is zero.
const DefaultSessionTTL = 30 * time.Minute

// DefaultMaxSessions is used when SessionsConfig.MaxSessions is zero.
const DefaultMaxSessions = 1000

// Session is one mounted demo desktop.
type Session struct {
	ID string
	*Manager

	lastSeen time.Time
}

// SessionsConfig configures a Sessions.
type SessionsConfig struct {
	DefaultApps []string
	TTL         time.Duration
	// MaxSessions caps live desktops; mounting past it evicts the one
	// used least recently.
	MaxSessions int
	Now         func() time.Time
}

// Sessions owns every mounted desktop. A page mount creates a session; it
// is discarded on unmount or after TTL without use.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*Session
	defaults []string
	ttl      time.Duration
	max      int
	now      func() time.Time
}

// NewSessions validates cfg and returns an empty Sessions.
func NewSessions(cfg SessionsConfig) (*Sessions, error) {
	if err := ValidateIDs(cfg.DefaultApps); err != nil {
		return nil, fmt.Errorf("default apps: %w", err)
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultSessionTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Sessions{
		sessions: make(map[string]*Session),
		defaults: append([]string(nil), cfg.DefaultApps...),
		ttl:      cfg.TTL,
		max:      cfg.MaxSessions,
		now:      cfg.Now,
	}, nil
}

// Mount creates a fresh desktop with the default apps open.
func (s *Sessions) Mount() (*Session, error) {
	m, err := NewManager(s.defaults...)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.sessions) >= s.max {
		s.evictOldestLocked()
	}
	sess := &Session{ID: uuid.New().String(), Manager: m, lastSeen: s.now()}
	s.sessions[sess.ID] = sess
	return sess, nil
}

func (s *Sessions) evictOldestLocked() {
	var oldest *Session
	for _, sess := range s.sessions {
		if oldest == nil || sess.lastSeen.Before(oldest.lastSeen) {
			oldest = sess
		}
	}
	if oldest != nil {
		delete(s.sessions, oldest.ID)
	}
}

// Get returns a live session and marks it as used.
func (s *Sessions) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.lastSeen = s.now()
	return sess, nil
}

// Unmount discards a session. Unknown ids are ignored.
func (s *Sessions) Unmount(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Sweep discards sessions idle for longer than the TTL and returns how
// many were removed.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is cancelled.
func (s *Sessions) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
