package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/switchubuntu/internal/analytics"
	"github.com/ziadkadry99/switchubuntu/internal/config"
	"github.com/ziadkadry99/switchubuntu/internal/content"
	"github.com/ziadkadry99/switchubuntu/internal/desktop"
	"github.com/ziadkadry99/switchubuntu/internal/prefs"
	"github.com/ziadkadry99/switchubuntu/internal/server"
	"github.com/ziadkadry99/switchubuntu/internal/site"
	"github.com/ziadkadry99/switchubuntu/internal/theme"
)

const shutdownGrace = 10 * time.Second

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site",
	Long:  `Starts the HTTP server with every page, the JSON API and the live WebSocket channel.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		logger := newLogger(cfg)
		defer logger.Sync()

		catalog, err := content.Default()
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		database, dbPath, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		prefStore := prefs.NewStore(database)
		themes := theme.NewRegistry(func(id string) theme.Storage { return prefStore.For(id) }, logger.Named("theme"))

		sessions, err := desktop.NewSessions(desktop.SessionsConfig{
			DefaultApps: cfg.Demo.DefaultApps,
			TTL:         cfg.Demo.SessionTTL,
			MaxSessions: cfg.Demo.MaxSessions,
		})
		if err != nil {
			return err
		}
		go sessions.Run(ctx, max(cfg.Demo.SessionTTL/2, time.Second))

		events := analytics.NewStore(database)
		go pruneEvents(ctx, events, cfg.EventRetention, logger.Named("analytics"))

		s, err := site.New(siteConfig(cfg), site.Deps{
			Catalog:  catalog,
			Themes:   themes,
			Sessions: sessions,
			Events:   events,
			Logger:   logger.Named("site"),
		})
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.Dev,
		}, database, logger.Named("http"))
		analytics.RegisterRoutes(srv.Router(), events)
		s.RegisterRoutes(srv.Router())

		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
		if err != nil {
			return fmt.Errorf("listening on port %d: %w", cfg.Port, err)
		}

		printBanner(cfg, dbPath)
		logger.Info("serving", zap.Int("port", cfg.Port), zap.Bool("dev", cfg.Dev))

		return srv.Run(ctx, ln, shutdownGrace)
	},
}

// pruneEvents drops events older than keep, once at start and then
// hourly, until ctx is cancelled. A zero keep disables it.
func pruneEvents(ctx context.Context, events *analytics.Store, keep time.Duration, logger *zap.Logger) {
	if keep <= 0 {
		return
	}
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		n, err := events.DeleteBefore(ctx, time.Now().Add(-keep))
		if err != nil {
			logger.Warn("pruning events", zap.Error(err))
		} else if n > 0 {
			logger.Info("pruned events", zap.Int64("deleted", n), zap.Duration("retention", keep))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// siteConfig maps the file config onto the site's tunables.
func siteConfig(cfg *config.Config) site.Config {
	return site.Config{
		DownloadURL:   cfg.DownloadURL,
		ClockInterval: cfg.Demo.ClockInterval,
		DownloadTick:  cfg.Download.TickInterval,
		MaxIncrement:  cfg.Download.MaxIncrement,
		ReadyDelay:    cfg.Download.ReadyDelay,
	}
}

func printBanner(cfg *config.Config, dbPath string) {
	title := color.New(color.FgHiYellow, color.Bold)
	label := color.New(color.FgCyan)

	title.Fprintf(os.Stderr, "switchubuntu %s\n", Version)
	label.Fprint(os.Stderr, "  Site:     ")
	fmt.Fprintf(os.Stderr, "http://localhost:%d\n", cfg.Port)
	label.Fprint(os.Stderr, "  Database: ")
	fmt.Fprintln(os.Stderr, dbPath)
	if cfg.Dev {
		color.New(color.FgRed).Fprintln(os.Stderr, "  Dev mode: CORS open to all origins")
	}
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
