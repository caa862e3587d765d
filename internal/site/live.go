package site

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/switchubuntu/internal/analytics"
	"github.com/ziadkadry99/switchubuntu/internal/desktop"
	"github.com/ziadkadry99/switchubuntu/internal/theme"
)

const liveWriteWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveRequest is the incoming WebSocket message format.
type liveRequest struct {
	Type    string `json:"type"` // mount, open, close, toggle_theme or download
	Session string `json:"session,omitempty"`
	App     string `json:"app,omitempty"`
}

// liveMessage is the outgoing WebSocket message format.
type liveMessage struct {
	Type    string           `json:"type"` // clock, theme, desktop, progress, download_ready or error
	Clock   *desktop.Reading `json:"clock,omitempty"`
	Theme   string           `json:"theme,omitempty"`
	Label   string           `json:"label,omitempty"`
	Session string           `json:"session,omitempty"`
	Apps    []string         `json:"apps,omitempty"`
	Percent *float64         `json:"percent,omitempty"`
	URL     string           `json:"url,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// liveConn is one browser tab. gorilla/websocket allows a single
// concurrent writer, so every send goes through mu.
type liveConn struct {
	site    *Site
	conn    *websocket.Conn
	ctx     context.Context
	visitor string
	theme   *theme.Store

	mu sync.Mutex

	state       sync.Mutex
	session     *desktop.Session
	stopClock   context.CancelFunc
	downloading bool
}

func (c *liveConn) send(msg liveMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
	if err := c.conn.WriteJSON(msg); err != nil {
		c.site.logger.Debug("websocket write", zap.String("type", msg.Type), zap.Error(err))
	}
}

func (c *liveConn) sendError(message string) {
	c.send(liveMessage{Type: "error", Error: message})
}

func (c *liveConn) sendDesktop(sess *desktop.Session) {
	c.send(liveMessage{Type: "desktop", Session: sess.ID, Apps: sess.OpenApps()})
}

func themeMessage(f theme.Flag) liveMessage {
	return liveMessage{Type: "theme", Theme: f.String(), Label: f.Label()}
}

func (s *Site) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	visitor := VisitorID(ctx)
	store := s.themes.For(visitor)
	defer s.themes.Release(visitor)

	c := &liveConn{site: s, conn: conn, ctx: ctx, visitor: visitor, theme: store}
	unsubscribe := store.Subscribe(func(f theme.Flag) { c.send(themeMessage(f)) })
	defer unsubscribe()
	defer c.unmount()

	c.send(themeMessage(store.Theme(ctx)))

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("websocket read", zap.Error(err))
			}
			return
		}

		var req liveRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			c.sendError("invalid message format")
			continue
		}

		switch req.Type {
		case "mount":
			c.mount(req.Session)
		case "open":
			c.open(req.App)
		case "close":
			c.close(req.App)
		case "toggle_theme":
			c.toggleTheme()
		case "download":
			c.download()
		default:
			c.sendError("unknown message type: " + req.Type)
		}
	}
}

// mount attaches the tab to a desktop, creating a fresh one when id is
// unknown, and starts the clock.
func (c *liveConn) mount(id string) {
	sess, err := c.site.sessions.Get(id)
	if errors.Is(err, desktop.ErrSessionNotFound) {
		sess, err = c.site.sessions.Mount()
	}
	if err != nil {
		c.sendError("mount failed: " + err.Error())
		return
	}

	c.state.Lock()
	prev := c.session
	c.session = sess
	if c.stopClock == nil {
		clockCtx, stop := context.WithCancel(c.ctx)
		c.stopClock = stop
		go c.site.clock.Tick(clockCtx, c.site.cfg.ClockInterval, func(r desktop.Reading) {
			c.send(liveMessage{Type: "clock", Clock: &r})
		})
	}
	c.state.Unlock()

	if prev != nil && prev.ID != sess.ID {
		c.site.sessions.Unmount(prev.ID)
	}
	c.sendDesktop(sess)
}

// unmount discards the tab's desktop; a page that is navigated away from
// starts over with the defaults.
func (c *liveConn) unmount() {
	c.state.Lock()
	sess := c.session
	c.session = nil
	if c.stopClock != nil {
		c.stopClock()
		c.stopClock = nil
	}
	c.state.Unlock()

	if sess != nil {
		c.site.sessions.Unmount(sess.ID)
	}
}

func (c *liveConn) current() *desktop.Session {
	c.state.Lock()
	defer c.state.Unlock()
	return c.session
}

func (c *liveConn) open(app string) {
	sess := c.current()
	if sess == nil {
		c.sendError("no desktop mounted")
		return
	}
	if err := sess.Open(app); err != nil {
		c.sendError(err.Error())
		return
	}
	c.site.record(c.ctx, analytics.KindAppOpen, app, sess.ID)
	c.sendDesktop(sess)
}

func (c *liveConn) close(app string) {
	sess := c.current()
	if sess == nil {
		c.sendError("no desktop mounted")
		return
	}
	if sess.IsOpen(app) {
		sess.Close(app)
		c.site.record(c.ctx, analytics.KindAppClose, app, sess.ID)
	}
	c.sendDesktop(sess)
}

// toggleTheme flips the visitor's flag. The new value reaches this tab,
// and every other tab of the visitor, through the store subscription.
func (c *liveConn) toggleTheme() {
	flag, err := c.theme.Toggle(c.ctx)
	if err != nil {
		c.site.logger.Error("toggling theme", zap.String("visitor", c.visitor), zap.Error(err))
		c.sendError("could not save theme")
		return
	}
	c.site.record(c.ctx, analytics.KindThemeToggle, "", flag.String())
}

// download runs the simulated meter, then hands over the real URL after
// the configured delay. One meter runs per tab at a time.
func (c *liveConn) download() {
	c.state.Lock()
	if c.downloading {
		c.state.Unlock()
		return
	}
	c.downloading = true
	c.state.Unlock()

	c.site.record(c.ctx, analytics.KindDownloadStart, c.site.cfg.DownloadURL, "live")

	go func() {
		defer func() {
			c.state.Lock()
			c.downloading = false
			c.state.Unlock()
		}()

		err := c.site.meter.Run(c.ctx, func(p float64) {
			c.send(liveMessage{Type: "progress", Percent: &p})
		})
		if err != nil {
			return
		}

		select {
		case <-c.ctx.Done():
			return
		case <-time.After(c.site.cfg.ReadyDelay):
		}
		c.send(liveMessage{Type: "download_ready", URL: c.site.cfg.DownloadURL})
	}()
}
