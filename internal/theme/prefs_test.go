package theme_test

import (
	"context"
	"testing"

	"github.com/ziadkadry99/switchubuntu/internal/db"
	"github.com/ziadkadry99/switchubuntu/internal/prefs"
	"github.com/ziadkadry99/switchubuntu/internal/theme"
)

func TestStorePersistsToPreferences(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	ctx := context.Background()
	p := prefs.NewStore(database)
	reg := theme.NewRegistry(func(id string) theme.Storage { return p.For(id) }, nil)

	store := reg.For("visitor-1")
	if store.Theme(ctx) != theme.Light {
		t.Fatal("fresh visitor should start light")
	}
	if _, err := store.Toggle(ctx); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	reg.Release("visitor-1")

	raw, err := p.Get(ctx, "visitor-1", theme.StorageKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if raw != "dark" {
		t.Errorf("persisted = %q, want dark", raw)
	}

	if got := reg.For("visitor-1").Theme(ctx); got != theme.Dark {
		t.Errorf("reload = %v, want dark", got)
	}
}
