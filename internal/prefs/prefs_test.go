package prefs

import (
	"context"
	"errors"
	"testing"

	"github.com/ziadkadry99/switchubuntu/internal/db"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestGetMissing(t *testing.T) {
	store := setupStore(t)

	_, err := store.Get(context.Background(), "v1", "theme")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing: err = %v, want ErrNotFound", err)
	}
}

func TestSetAndGet(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "v1", "theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := store.Get(ctx, "v1", "theme")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "dark" {
		t.Errorf("Get = %q, want %q", got, "dark")
	}

	// Overwrite.
	if err := store.Set(ctx, "v1", "theme", "light"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, _ = store.Get(ctx, "v1", "theme")
	if got != "light" {
		t.Errorf("after overwrite Get = %q, want %q", got, "light")
	}
}

func TestVisitorsAreIsolated(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "alice", "theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := store.Get(ctx, "bob", "theme"); !errors.Is(err, ErrNotFound) {
		t.Errorf("bob should have no theme, err = %v", err)
	}
}

func TestDeleteAndAll(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	store.Set(ctx, "v1", "theme", "dark")
	store.Set(ctx, "v1", "category", "development")

	all, err := store.All(ctx, "v1")
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 2 || all["category"] != "development" {
		t.Errorf("All = %v", all)
	}

	if err := store.Delete(ctx, "v1", "theme"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, "v1", "theme"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
	all, _ = store.All(ctx, "v1")
	if len(all) != 1 {
		t.Errorf("expected 1 preference after delete, got %d", len(all))
	}
}

func TestScoped(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	scoped := store.For("v1")

	_, found, err := scoped.Get(ctx, "theme")
	if err != nil || found {
		t.Fatalf("Get on empty: found=%v err=%v", found, err)
	}

	if err := scoped.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, found, err := scoped.Get(ctx, "theme")
	if err != nil || !found || value != "dark" {
		t.Errorf("Get = (%q, %v, %v), want (dark, true, nil)", value, found, err)
	}

	raw, err := store.Get(ctx, "v1", "theme")
	if err != nil || raw != "dark" {
		t.Errorf("underlying row = (%q, %v)", raw, err)
	}
}
