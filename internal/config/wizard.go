package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// demoApps lists the dock entries offered by the wizard. It mirrors the
// descriptor table in internal/desktop; validation happens there.
var demoApps = []string{"files", "firefox", "terminal", "libreoffice", "calculator", "settings", "store", "music"}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to switchubuntu! Let's configure the site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port to serve the site on",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory (preferences and analytics database)",
		Default: cfg.DataDir,
	}
	if cfg.DataDir, err = dataPrompt.Run(); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 3. Log level.
	levelPrompt := promptui.Select{
		Label: "Select log level",
		Items: []string{"info", "debug", "warn", "error"},
	}
	_, level, err := levelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log level selection: %w", err)
	}
	cfg.LogLevel = LogLevel(level)

	// 4. Apps open when the demo desktop loads.
	appsPrompt := promptui.Prompt{
		Label:   fmt.Sprintf("Apps open on the demo desktop (comma-separated: %s)", strings.Join(demoApps, ", ")),
		Default: strings.Join(cfg.Demo.DefaultApps, ","),
	}
	appsStr, err := appsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("demo apps: %w", err)
	}
	cfg.Demo.DefaultApps = splitAndTrim(appsStr)

	// 5. Export directory.
	exportPrompt := promptui.Prompt{
		Label:   "Output directory for the static export",
		Default: cfg.Export.OutputDir,
	}
	if cfg.Export.OutputDir, err = exportPrompt.Run(); err != nil {
		return nil, fmt.Errorf("export dir: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
