package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment overrides. Nested keys use a
// double underscore: SWITCHUBUNTU_DEMO__SESSION_TTL -> demo.session_ttl.
const EnvPrefix = "SWITCHUBUNTU_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SWITCHUBUNTU_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps SWITCHUBUNTU_DEMO__SESSION_TTL to demo.session_ttl.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogLevels = map[LogLevel]bool{
	LogDebug: true,
	LogInfo:  true,
	LogWarn:  true,
	LogError: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.DownloadURL == "" {
		return fmt.Errorf("download_url is required")
	}
	u, err := url.Parse(c.DownloadURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid download_url %q: must be an absolute http(s) URL", c.DownloadURL)
	}

	if c.LogLevel != "" && !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	if c.EventRetention < 0 {
		return fmt.Errorf("event_retention must be non-negative")
	}

	if c.Demo.SessionTTL <= 0 {
		return fmt.Errorf("demo.session_ttl must be positive")
	}
	if c.Demo.MaxSessions <= 0 {
		return fmt.Errorf("demo.max_sessions must be positive")
	}
	if c.Demo.ClockInterval <= 0 {
		return fmt.Errorf("demo.clock_interval must be positive")
	}

	if c.Download.TickInterval <= 0 {
		return fmt.Errorf("download.tick_interval must be positive")
	}
	if c.Download.MaxIncrement <= 0 || c.Download.MaxIncrement > 100 {
		return fmt.Errorf("download.max_increment must be in (0, 100]")
	}
	if c.Download.ReadyDelay < 0 {
		return fmt.Errorf("download.ready_delay must be non-negative")
	}

	if c.Export.OutputDir == "" {
		return fmt.Errorf("export.output_dir is required")
	}

	return nil
}
