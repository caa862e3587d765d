package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/switchubuntu/internal/assets"
	"github.com/ziadkadry99/switchubuntu/internal/content"
	"github.com/ziadkadry99/switchubuntu/internal/desktop"
	"github.com/ziadkadry99/switchubuntu/internal/progress"
	"github.com/ziadkadry99/switchubuntu/internal/site"
	"github.com/ziadkadry99/switchubuntu/internal/theme"
)

var (
	exportOutput   string
	exportBasePath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the site as static files",
	Long: `Renders every page to HTML and copies the stylesheet, script and any
configured assets into a directory that any static host can serve. The
exported pages run the theme toggle, menu, accordion, tabs, desktop demo
and download meter in the browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if exportOutput != "" {
			cfg.Export.OutputDir = exportOutput
		}
		if cmd.Flags().Changed("base-path") {
			cfg.Export.BasePath = exportBasePath
		}

		logger := newLogger(cfg)
		defer logger.Sync()

		catalog, err := content.Default()
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		// Exported pages keep the theme in the browser, so nothing is
		// persisted here.
		themes := theme.NewRegistry(func(string) theme.Storage { return theme.NewMemoryStorage() }, logger.Named("theme"))
		sessions, err := desktop.NewSessions(desktop.SessionsConfig{DefaultApps: cfg.Demo.DefaultApps})
		if err != nil {
			return err
		}

		s, err := site.New(siteConfig(cfg), site.Deps{
			Catalog:  catalog,
			Themes:   themes,
			Sessions: sessions,
			Logger:   logger.Named("export"),
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		res, err := s.Export(ctx, site.ExportOptions{
			OutputDir: cfg.Export.OutputDir,
			BasePath:  cfg.Export.BasePath,
			Assets: assets.Config{
				RootDir: cfg.Export.AssetsDir,
				Include: cfg.Export.Assets,
			},
			Reporter: progress.NewReporter("Exporting"),
		})
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		color.New(color.FgGreen).Fprintf(os.Stderr, "Exported %d pages, %d static files and %d assets to %s\n",
			res.Pages, res.Static, res.Assets, cfg.Export.OutputDir)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output directory (overrides config)")
	exportCmd.Flags().StringVar(&exportBasePath, "base-path", "", "URL path the export is hosted under, e.g. /switch (overrides config)")
	rootCmd.AddCommand(exportCmd)
}
