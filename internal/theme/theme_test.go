package theme

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type failingStorage struct {
	MemoryStorage
	getErr error
	setErr error
}

func newFailingStorage() *failingStorage {
	return &failingStorage{MemoryStorage: MemoryStorage{values: make(map[string]string)}}
}

func (f *failingStorage) Get(ctx context.Context, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	return f.MemoryStorage.Get(ctx, key)
}

func (f *failingStorage) Set(ctx context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.MemoryStorage.Set(ctx, key, value)
}

func TestParseFlag(t *testing.T) {
	tests := []struct {
		in     string
		want   Flag
		wantOK bool
	}{
		{"light", Light, true},
		{"dark", Dark, true},
		{"", Light, false},
		{"Dark", Light, false},
		{"purple", Light, false},
	}
	for _, tt := range tests {
		got, ok := ParseFlag(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseFlag(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFlagLabel(t *testing.T) {
	if Light.Label() != "Switch to dark mode" {
		t.Errorf("Light.Label() = %q", Light.Label())
	}
	if Dark.Label() != "Switch to light mode" {
		t.Errorf("Dark.Label() = %q", Dark.Label())
	}
}

func TestFreshLoadToggleReload(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	store := NewStore(storage, nil)
	if got := store.Theme(ctx); got != Light {
		t.Fatalf("fresh load = %v, want light", got)
	}

	got, err := store.Toggle(ctx)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if got != Dark {
		t.Errorf("after toggle = %v, want dark", got)
	}
	if raw, _, _ := storage.Get(ctx, StorageKey); raw != "dark" {
		t.Errorf("persisted = %q, want %q", raw, "dark")
	}

	// A new page load reads the persisted value.
	reloaded := NewStore(storage, nil)
	if got := reloaded.Theme(ctx); got != Dark {
		t.Errorf("after reload = %v, want dark", got)
	}
}

func TestToggleInvolution(t *testing.T) {
	ctx := context.Background()
	for _, start := range []Flag{Light, Dark} {
		storage := NewMemoryStorage()
		storage.Set(ctx, StorageKey, start.String())
		store := NewStore(storage, nil)

		if _, err := store.Toggle(ctx); err != nil {
			t.Fatalf("Toggle: %v", err)
		}
		if _, err := store.Toggle(ctx); err != nil {
			t.Fatalf("Toggle: %v", err)
		}

		if got := store.Theme(ctx); got != start {
			t.Errorf("start %v: after two toggles = %v", start, got)
		}
		if raw, _, _ := storage.Get(ctx, StorageKey); raw != start.String() {
			t.Errorf("start %v: persisted = %q", start, raw)
		}
	}
}

func TestInvalidStoredValueIsLight(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	storage.Set(ctx, StorageKey, "sepia")

	store := NewStore(storage, nil)
	if got := store.Theme(ctx); got != Light {
		t.Errorf("invalid stored value = %v, want light", got)
	}
}

func TestUnreadableStorageIsLight(t *testing.T) {
	storage := newFailingStorage()
	storage.getErr = errors.New("disk on fire")

	store := NewStore(storage, nil)
	if got := store.Theme(context.Background()); got != Light {
		t.Errorf("unreadable storage = %v, want light", got)
	}
}

func TestToggleWriteFailure(t *testing.T) {
	ctx := context.Background()
	storage := newFailingStorage()
	storage.setErr = errors.New("quota exceeded")

	store := NewStore(storage, nil)
	notified := 0
	store.Subscribe(func(Flag) { notified++ })

	got, err := store.Toggle(ctx)
	if err == nil {
		t.Fatal("expected write error")
	}
	if got != Light || store.Theme(ctx) != Light {
		t.Errorf("flag changed despite failed write: %v", store.Theme(ctx))
	}
	if notified != 0 {
		t.Errorf("subscribers notified %d times on failed write", notified)
	}
}

func TestSubscribersNotifiedBeforeToggleReturns(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage(), nil)

	var seen []Flag
	cancelA := store.Subscribe(func(f Flag) { seen = append(seen, f) })
	store.Subscribe(func(f Flag) { seen = append(seen, f) })

	store.Toggle(ctx)
	if len(seen) != 2 || seen[0] != Dark || seen[1] != Dark {
		t.Fatalf("seen = %v, want [dark dark]", seen)
	}

	cancelA()
	cancelA()
	if store.Subscribers() != 1 {
		t.Errorf("Subscribers() = %d, want 1", store.Subscribers())
	}

	seen = nil
	store.Toggle(ctx)
	if len(seen) != 1 || seen[0] != Light {
		t.Errorf("seen after cancel = %v, want [light]", seen)
	}
}

func TestSetNotifiesOnlyOnChange(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := NewStore(storage, nil)

	notified := 0
	store.Subscribe(func(Flag) { notified++ })

	if err := store.Set(ctx, Light); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if notified != 0 {
		t.Errorf("Set to same flag notified %d times", notified)
	}
	if err := store.Set(ctx, Dark); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if notified != 1 {
		t.Errorf("Set to new flag notified %d times, want 1", notified)
	}
	if raw, _, _ := storage.Get(ctx, StorageKey); raw != "dark" {
		t.Errorf("persisted = %q", raw)
	}
}

func TestSubscriberMayReadTheme(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage(), nil)

	var read Flag
	store.Subscribe(func(Flag) { read = store.Theme(ctx) })
	store.Toggle(ctx)

	if read != Dark {
		t.Errorf("Theme() inside subscriber = %v, want dark", read)
	}
}

func TestConcurrentToggles(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Toggle(ctx)
		}()
	}
	wg.Wait()

	// An even number of flips lands back on light.
	if got := store.Theme(ctx); got != Light {
		t.Errorf("after 50 toggles = %v, want light", got)
	}
}

func TestRegistrySharesStorePerVisitor(t *testing.T) {
	storages := map[string]*MemoryStorage{}
	reg := NewRegistry(func(id string) Storage {
		if s, ok := storages[id]; ok {
			return s
		}
		s := NewMemoryStorage()
		storages[id] = s
		return s
	}, nil)

	a1 := reg.For("alice")
	a2 := reg.For("alice")
	b := reg.For("bob")
	if a1 != a2 {
		t.Error("same visitor should share a store")
	}
	if a1 == b {
		t.Error("different visitors should not share a store")
	}

	// A toggle on one tab reaches the other tab's subscriber.
	var got Flag
	a2.Subscribe(func(f Flag) { got = f })
	a1.Toggle(context.Background())
	if got != Dark {
		t.Errorf("second tab saw %v, want dark", got)
	}
	if b.Theme(context.Background()) != Light {
		t.Error("bob's theme should be unaffected")
	}

	reg.Release("alice")
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2 while alice still holds a ref", reg.Len())
	}
	reg.Release("alice")
	reg.Release("bob")
	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0", reg.Len())
	}
	reg.Release("nobody")

	// Persisted value survives release.
	if reg.For("alice").Theme(context.Background()) != Dark {
		t.Error("alice's theme should persist across release")
	}
}
