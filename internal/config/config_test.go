package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.DownloadURL != DefaultDownloadURL {
		t.Errorf("expected default download_url %q, got %q", DefaultDownloadURL, cfg.DownloadURL)
	}
	if len(cfg.Demo.DefaultApps) != 1 || cfg.Demo.DefaultApps[0] != "files" {
		t.Errorf("expected default demo apps [files], got %v", cfg.Demo.DefaultApps)
	}
	if cfg.Demo.ClockInterval != time.Second {
		t.Errorf("expected clock interval 1s, got %s", cfg.Demo.ClockInterval)
	}
	if cfg.Download.TickInterval != 200*time.Millisecond {
		t.Errorf("expected tick interval 200ms, got %s", cfg.Download.TickInterval)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.switchubuntu.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.DataDir = "data"
	original.LogLevel = LogDebug
	original.Demo.DefaultApps = []string{"terminal", "firefox"}
	original.Demo.SessionTTL = 5 * time.Minute
	original.Download.MaxIncrement = 7.5
	original.Export.Assets = []string{"**/*.css"}

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.DataDir != original.DataDir {
		t.Errorf("data_dir: got %q, want %q", loaded.DataDir, original.DataDir)
	}
	if loaded.LogLevel != original.LogLevel {
		t.Errorf("log_level: got %q, want %q", loaded.LogLevel, original.LogLevel)
	}
	if loaded.Demo.SessionTTL != original.Demo.SessionTTL {
		t.Errorf("demo.session_ttl: got %s, want %s", loaded.Demo.SessionTTL, original.Demo.SessionTTL)
	}
	if loaded.Download.MaxIncrement != original.Download.MaxIncrement {
		t.Errorf("download.max_increment: got %f, want %f", loaded.Download.MaxIncrement, original.Download.MaxIncrement)
	}
	if len(loaded.Demo.DefaultApps) != 2 || loaded.Demo.DefaultApps[0] != "terminal" {
		t.Errorf("demo.default_apps: got %v, want %v", loaded.Demo.DefaultApps, original.Demo.DefaultApps)
	}
	if len(loaded.Export.Assets) != 1 || loaded.Export.Assets[0] != "**/*.css" {
		t.Errorf("export.assets: got %v", loaded.Export.Assets)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("SWITCHUBUNTU_DATA_DIR", "/var/lib/switchubuntu")
	t.Setenv("SWITCHUBUNTU_DEMO__SESSION_TTL", "90s")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DataDir != "/var/lib/switchubuntu" {
		t.Errorf("env override failed: got %q", loaded.DataDir)
	}
	if loaded.Demo.SessionTTL != 90*time.Second {
		t.Errorf("nested env override failed: got %s", loaded.Demo.SessionTTL)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yml")
	if err := os.WriteFile(path, []byte("port: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero port", func(c *Config) { c.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, true},
		{"empty download url", func(c *Config) { c.DownloadURL = "" }, true},
		{"relative download url", func(c *Config) { c.DownloadURL = "/download" }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"zero session ttl", func(c *Config) { c.Demo.SessionTTL = 0 }, true},
		{"zero max sessions", func(c *Config) { c.Demo.MaxSessions = 0 }, true},
		{"zero clock interval", func(c *Config) { c.Demo.ClockInterval = 0 }, true},
		{"zero tick interval", func(c *Config) { c.Download.TickInterval = 0 }, true},
		{"increment over 100", func(c *Config) { c.Download.MaxIncrement = 150 }, true},
		{"negative ready delay", func(c *Config) { c.Download.ReadyDelay = -time.Second }, true},
		{"empty export dir", func(c *Config) { c.Export.OutputDir = "" }, true},
		{"no default apps", func(c *Config) { c.Demo.DefaultApps = nil }, false},
		{"negative retention", func(c *Config) { c.EventRetention = -time.Hour }, true},
		{"retention disabled", func(c *Config) { c.EventRetention = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"SWITCHUBUNTU_PORT", "port"},
		{"SWITCHUBUNTU_DATA_DIR", "data_dir"},
		{"SWITCHUBUNTU_DEMO__SESSION_TTL", "demo.session_ttl"},
		{"SWITCHUBUNTU_EXPORT__OUTPUT_DIR", "export.output_dir"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" files , terminal ", []string{"files", "terminal"}},
		{"files", []string{"files"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
