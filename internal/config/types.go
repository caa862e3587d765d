package config

import "time"

// LogLevel controls the verbosity of the server logger.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Config is the top-level switchubuntu configuration, corresponding to .switchubuntu.yml.
type Config struct {
	Port           int            `yaml:"port" koanf:"port"`
	DataDir        string         `yaml:"data_dir" koanf:"data_dir"`
	DownloadURL    string         `yaml:"download_url" koanf:"download_url"`
	Dev            bool           `yaml:"dev" koanf:"dev"`
	LogLevel       LogLevel       `yaml:"log_level" koanf:"log_level"`
	EventRetention time.Duration  `yaml:"event_retention" koanf:"event_retention"` // zero keeps events forever
	Demo           DemoConfig     `yaml:"demo" koanf:"demo"`
	Download       DownloadConfig `yaml:"download" koanf:"download"`
	Export         ExportConfig   `yaml:"export" koanf:"export"`
}

// DemoConfig holds settings for the simulated desktop on /try.
type DemoConfig struct {
	DefaultApps   []string      `yaml:"default_apps" koanf:"default_apps"`
	SessionTTL    time.Duration `yaml:"session_ttl" koanf:"session_ttl"`
	ClockInterval time.Duration `yaml:"clock_interval" koanf:"clock_interval"`
	MaxSessions   int           `yaml:"max_sessions" koanf:"max_sessions"`
}

// DownloadConfig tunes the simulated download progress shown before
// the visitor is sent to DownloadURL.
type DownloadConfig struct {
	TickInterval time.Duration `yaml:"tick_interval" koanf:"tick_interval"`
	MaxIncrement float64       `yaml:"max_increment" koanf:"max_increment"`
	ReadyDelay   time.Duration `yaml:"ready_delay" koanf:"ready_delay"`
}

// ExportConfig holds settings for the static export.
type ExportConfig struct {
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	BasePath  string   `yaml:"base_path" koanf:"base_path"`
	AssetsDir string   `yaml:"assets_dir" koanf:"assets_dir"`
	Assets    []string `yaml:"assets" koanf:"assets"`
}
