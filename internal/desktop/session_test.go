package desktop

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func TestMountStartsWithDefaults(t *testing.T) {
	s, err := NewSessions(SessionsConfig{DefaultApps: []string{"files"}})
	if err != nil {
		t.Fatalf("NewSessions: %v", err)
	}
	sess, err := s.Mount()
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if sess.ID == "" {
		t.Error("expected session id")
	}
	if got := sess.OpenApps(); !reflect.DeepEqual(got, []string{"files"}) {
		t.Errorf("OpenApps() = %v, want [files]", got)
	}
}

func TestNavigateAwayResetsDemo(t *testing.T) {
	s, _ := NewSessions(SessionsConfig{DefaultApps: []string{"files"}})

	first, _ := s.Mount()
	first.Open("terminal")
	first.Open("music")
	first.Close("files")

	// Leaving the page unmounts; coming back mounts a fresh desktop.
	s.Unmount(first.ID)
	if _, err := s.Get(first.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get after unmount err = %v", err)
	}

	second, _ := s.Mount()
	if second.ID == first.ID {
		t.Error("remount reused the session id")
	}
	if got := second.OpenApps(); !reflect.DeepEqual(got, []string{"files"}) {
		t.Errorf("remounted OpenApps() = %v, want [files]", got)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	s, _ := NewSessions(SessionsConfig{})
	a, _ := s.Mount()
	b, _ := s.Mount()

	a.Open("firefox")
	if b.IsOpen("firefox") {
		t.Error("opening in one session leaked into another")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestNewSessionsRejectsUnknownDefault(t *testing.T) {
	_, err := NewSessions(SessionsConfig{DefaultApps: []string{"files", "winamp"}})
	if !errors.Is(err, ErrUnknownApp) {
		t.Errorf("err = %v, want ErrUnknownApp", err)
	}
}

func TestSweepExpiresIdleSessions(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	s, _ := NewSessions(SessionsConfig{TTL: 10 * time.Minute, Now: clock.now})

	idle, _ := s.Mount()
	active, _ := s.Mount()

	clock.t = clock.t.Add(8 * time.Minute)
	if _, err := s.Get(active.ID); err != nil {
		t.Fatalf("Get: %v", err)
	}

	clock.t = clock.t.Add(5 * time.Minute)
	if removed := s.Sweep(); removed != 1 {
		t.Errorf("Sweep removed %d, want 1", removed)
	}
	if _, err := s.Get(idle.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("idle session should be gone, err = %v", err)
	}
	if _, err := s.Get(active.ID); err != nil {
		t.Errorf("active session should survive: %v", err)
	}
}

func TestMountEvictsLeastRecentlyUsed(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	s, _ := NewSessions(SessionsConfig{MaxSessions: 2, Now: clock.now})

	first, _ := s.Mount()
	clock.t = clock.t.Add(time.Second)
	second, _ := s.Mount()
	clock.t = clock.t.Add(time.Second)
	if _, err := s.Get(first.ID); err != nil {
		t.Fatalf("Get: %v", err)
	}
	clock.t = clock.t.Add(time.Second)

	third, _ := s.Mount()
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if _, err := s.Get(second.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("least recently used session should be evicted, err = %v", err)
	}
	for _, sess := range []*Session{first, third} {
		if _, err := s.Get(sess.ID); err != nil {
			t.Errorf("session %s should survive: %v", sess.ID, err)
		}
	}
}

func TestMountCapDefaults(t *testing.T) {
	s, _ := NewSessions(SessionsConfig{})
	for range DefaultMaxSessions + 5 {
		if _, err := s.Mount(); err != nil {
			t.Fatalf("Mount: %v", err)
		}
	}
	if s.Len() != DefaultMaxSessions {
		t.Errorf("Len() = %d, want %d", s.Len(), DefaultMaxSessions)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s, _ := NewSessions(SessionsConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
