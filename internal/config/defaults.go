package config

import "time"

// DefaultConfigPath is the config file looked up when --config is not given.
const DefaultConfigPath = ".switchubuntu.yml"

// DefaultDownloadURL is where the download buttons ultimately send visitors.
const DefaultDownloadURL = "https://ubuntu.com/download"

// DefaultAssets are glob patterns copied from the assets dir during export.
var DefaultAssets = []string{
	"**/*.css",
	"**/*.js",
	"**/*.svg",
	"**/*.png",
	"**/*.jpg",
	"**/*.webp",
	"**/*.ico",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:           8080,
		DataDir:        ".switchubuntu",
		DownloadURL:    DefaultDownloadURL,
		LogLevel:       LogInfo,
		EventRetention: 90 * 24 * time.Hour,
		Demo: DemoConfig{
			DefaultApps:   []string{"files"},
			SessionTTL:    30 * time.Minute,
			ClockInterval: time.Second,
			MaxSessions:   1000,
		},
		Download: DownloadConfig{
			TickInterval: 200 * time.Millisecond,
			MaxIncrement: 15,
			ReadyDelay:   time.Second,
		},
		Export: ExportConfig{
			OutputDir: "dist",
			Assets:    DefaultAssets,
		},
	}
}
