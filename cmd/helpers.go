package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/switchubuntu/internal/config"
	"github.com/ziadkadry99/switchubuntu/internal/db"
)

// DatabaseFile is the SQLite file kept under the data dir.
const DatabaseFile = "switchubuntu.db"

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `switchubuntu init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// openDatabase opens the SQLite database under the configured data dir,
// creating the directory if needed.
func openDatabase(cfg *config.Config) (*db.DB, string, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, "", fmt.Errorf("creating data dir: %w", err)
	}
	dbPath := filepath.Join(cfg.DataDir, DatabaseFile)
	database, err := db.Open(dbPath)
	if err != nil {
		return nil, "", fmt.Errorf("opening database: %w", err)
	}
	return database, dbPath, nil
}
