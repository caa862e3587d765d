// Package site renders the marketing pages and serves their interactive
// endpoints: theme toggle, the try-it desktop, the download meter and the
// live WebSocket channel that upgrades all three in the browser.
package site

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/switchubuntu/internal/analytics"
	"github.com/ziadkadry99/switchubuntu/internal/content"
	"github.com/ziadkadry99/switchubuntu/internal/desktop"
	"github.com/ziadkadry99/switchubuntu/internal/progress"
	"github.com/ziadkadry99/switchubuntu/internal/theme"
)

// Config holds the tunables of the rendered site.
type Config struct {
	DownloadURL   string
	ClockInterval time.Duration
	DownloadTick  time.Duration
	MaxIncrement  float64
	ReadyDelay    time.Duration
}

// Deps are the collaborators a Site renders from. Catalog, Themes and
// Sessions are required; Events may be nil to disable the event trail.
type Deps struct {
	Catalog  *content.Catalog
	Themes   *theme.Registry
	Sessions *desktop.Sessions
	Events   *analytics.Store
	Logger   *zap.Logger

	// Now and Increment are overridable for tests.
	Now       func() time.Time
	Increment progress.Increment
}

// Site is the set of page and API handlers.
type Site struct {
	cfg      Config
	catalog  *content.Catalog
	themes   *theme.Registry
	sessions *desktop.Sessions
	events   *analytics.Store
	logger   *zap.Logger
	renderer *Renderer
	clock    desktop.Clock
	meter    progress.Simulator
}

// New parses the templates and returns a Site.
func New(cfg Config, deps Deps) (*Site, error) {
	if deps.Catalog == nil || deps.Themes == nil || deps.Sessions == nil {
		return nil, fmt.Errorf("site: catalog, themes and sessions are required")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if cfg.ClockInterval <= 0 {
		cfg.ClockInterval = time.Second
	}
	if cfg.DownloadTick <= 0 {
		cfg.DownloadTick = 200 * time.Millisecond
	}
	if cfg.MaxIncrement <= 0 {
		cfg.MaxIncrement = 15
	}
	inc := deps.Increment
	if inc == nil {
		inc = progress.RandomIncrement(cfg.MaxIncrement)
	}

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	return &Site{
		cfg:      cfg,
		catalog:  deps.Catalog,
		themes:   deps.Themes,
		sessions: deps.Sessions,
		events:   deps.Events,
		logger:   deps.Logger,
		renderer: renderer,
		clock:    desktop.Clock{Now: deps.Now},
		meter:    progress.Simulator{Interval: cfg.DownloadTick, Increment: inc},
	}, nil
}

// RegisterRoutes mounts every page, form and API route onto r.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFiles()))))

	r.Group(func(r chi.Router) {
		r.Use(s.visitorMiddleware)

		for _, p := range pages {
			r.Get(p.Path, s.servePage(p))
		}

		r.Post("/theme/toggle", s.handleThemeToggleForm)
		r.Post("/try/{session}/open/{app}", s.handleTryOpen)
		r.Post("/try/{session}/close/{app}", s.handleTryClose)

		r.Route("/api", func(r chi.Router) {
			r.Get("/theme", s.handleThemeGet)
			r.Post("/theme/toggle", s.handleThemeToggleAPI)
			r.Post("/desktop", s.handleDesktopMount)
			r.Get("/desktop/{session}", s.handleDesktopGet)
			r.Put("/desktop/{session}/apps/{app}", s.handleDesktopOpen)
			r.Delete("/desktop/{session}/apps/{app}", s.handleDesktopClose)
			r.Post("/download", s.handleDownload)
		})

		r.Get("/ws", s.handleWebSocket)
	})
}

// record appends an analytics event. Failures are logged, never surfaced.
func (s *Site) record(ctx context.Context, kind analytics.Kind, subject, detail string) {
	if s.events == nil {
		return
	}
	err := s.events.Record(ctx, analytics.Event{
		VisitorID: VisitorID(ctx),
		Kind:      kind,
		Subject:   subject,
		Detail:    detail,
	})
	if err != nil {
		s.logger.Warn("recording event", zap.String("kind", string(kind)), zap.Error(err))
	}
}
