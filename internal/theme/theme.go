// Package theme holds the light/dark flag shared by every page a visitor
// has open, and persists it through a pluggable Storage.
package theme

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Flag is the site-wide colour scheme.
type Flag string

const (
	Light Flag = "light"
	Dark  Flag = "dark"
)

// StorageKey is the preference key the flag is persisted under.
const StorageKey = "theme"

// ParseFlag converts a stored value into a Flag. Anything other than
// "light" or "dark" yields Light with ok == false.
func ParseFlag(s string) (Flag, bool) {
	switch Flag(s) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return Light, false
}

// Toggle returns the opposite flag.
func (f Flag) Toggle() Flag {
	if f == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether the dark scheme is active.
func (f Flag) IsDark() bool { return f == Dark }

func (f Flag) String() string { return string(f) }

// Label is the accessible name of the toggle button for the current flag.
func (f Flag) Label() string {
	if f == Dark {
		return "Switch to light mode"
	}
	return "Switch to dark mode"
}

// Storage is where a Store persists its flag.
type Storage interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Store is the observable theme flag for one visitor.
type Store struct {
	mu      sync.Mutex
	storage Storage
	logger  *zap.Logger

	loaded bool
	flag   Flag

	subs   map[int]func(Flag)
	nextID int
}

// NewStore creates a Store reading from and writing to storage. The flag
// is read lazily on first use. A nil logger disables logging.
func NewStore(storage Storage, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		storage: storage,
		logger:  logger,
		flag:    Light,
		subs:    make(map[int]func(Flag)),
	}
}

// Theme returns the current flag. Missing, invalid or unreadable stored
// values resolve to Light.
func (s *Store) Theme(ctx context.Context) Flag {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked(ctx)
	return s.flag
}

func (s *Store) loadLocked(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	raw, found, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		s.logger.Debug("reading stored theme", zap.Error(err))
		return
	}
	if !found {
		return
	}
	f, ok := ParseFlag(raw)
	if !ok {
		s.logger.Debug("ignoring invalid stored theme", zap.String("value", raw))
	}
	s.flag = f
}

// Toggle flips the flag, persists it and notifies every subscriber before
// returning. If the write fails the flag is left unchanged.
func (s *Store) Toggle(ctx context.Context) (Flag, error) {
	s.mu.Lock()
	s.loadLocked(ctx)
	next := s.flag.Toggle()
	if err := s.storage.Set(ctx, StorageKey, next.String()); err != nil {
		cur := s.flag
		s.mu.Unlock()
		return cur, err
	}
	s.flag = next
	subs := s.subscribersLocked()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next, nil
}

// Set stores f. Subscribers are notified only when the flag changes.
func (s *Store) Set(ctx context.Context, f Flag) error {
	f, _ = ParseFlag(f.String())

	s.mu.Lock()
	s.loadLocked(ctx)
	if err := s.storage.Set(ctx, StorageKey, f.String()); err != nil {
		s.mu.Unlock()
		return err
	}
	changed := s.flag != f
	s.flag = f
	var subs []func(Flag)
	if changed {
		subs = s.subscribersLocked()
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(f)
	}
	return nil
}

// Subscribe registers fn to be called with the new flag after every
// change. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(Flag)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Subscribers returns the number of live subscriptions.
func (s *Store) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Store) subscribersLocked() []func(Flag) {
	out := make([]func(Flag), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}
