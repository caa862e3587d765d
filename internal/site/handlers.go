package site

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/switchubuntu/internal/analytics"
	"github.com/ziadkadry99/switchubuntu/internal/desktop"
	"github.com/ziadkadry99/switchubuntu/internal/theme"
)

// themeResponse is the JSON body of the theme endpoints.
type themeResponse struct {
	Theme string `json:"theme"`
	Label string `json:"label"`
}

func newThemeResponse(f theme.Flag) themeResponse {
	return themeResponse{Theme: f.String(), Label: f.Label()}
}

// desktopResponse is the JSON view of one mounted desktop.
type desktopResponse struct {
	Session string             `json:"session"`
	Apps    []string           `json:"apps"`
	Windows []desktop.Window   `json:"windows"`
	Dock    []desktop.DockItem `json:"dock"`
}

func newDesktopResponse(sess *desktop.Session) desktopResponse {
	return desktopResponse{
		Session: sess.ID,
		Apps:    sess.OpenApps(),
		Windows: sess.Windows(),
		Dock:    sess.Dock(),
	}
}

// downloadResponse tells the client where the download lives.
type downloadResponse struct {
	URL string `json:"url"`
}

// toggleTheme flips the visitor's flag and records the change.
func (s *Site) toggleTheme(r *http.Request) (theme.Flag, error) {
	ctx := r.Context()
	id := VisitorID(ctx)
	store := s.themes.For(id)
	defer s.themes.Release(id)

	flag, err := store.Toggle(ctx)
	if err != nil {
		s.logger.Error("toggling theme", zap.String("visitor", id), zap.Error(err))
		return flag, err
	}
	s.record(ctx, analytics.KindThemeToggle, "", flag.String())
	return flag, nil
}

func (s *Site) handleThemeToggleForm(w http.ResponseWriter, r *http.Request) {
	if _, err := s.toggleTheme(r); err != nil {
		http.Error(w, "could not save theme", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, safeReturn(r.FormValue("return")), http.StatusSeeOther)
}

func (s *Site) handleThemeGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newThemeResponse(s.visitorTheme(r.Context())))
}

func (s *Site) handleThemeToggleAPI(w http.ResponseWriter, r *http.Request) {
	flag, err := s.toggleTheme(r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not save theme"})
		return
	}
	writeJSON(w, http.StatusOK, newThemeResponse(flag))
}

// openApp opens app on sess and records it.
func (s *Site) openApp(r *http.Request, sess *desktop.Session, app string) error {
	if err := sess.Open(app); err != nil {
		return err
	}
	s.record(r.Context(), analytics.KindAppOpen, app, sess.ID)
	return nil
}

// closeApp closes app on sess and records it when it was open.
func (s *Site) closeApp(r *http.Request, sess *desktop.Session, app string) {
	if !sess.IsOpen(app) {
		return
	}
	sess.Close(app)
	s.record(r.Context(), analytics.KindAppClose, app, sess.ID)
}

func tryURL(session string) string {
	u := url.URL{Path: "/try", RawQuery: url.Values{SessionParam: {session}}.Encode()}
	return u.String()
}

// handleTryOpen is the no-script path for a dock click.
func (s *Site) handleTryOpen(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(chi.URLParam(r, "session"))
	if err != nil {
		http.Redirect(w, r, "/try", http.StatusSeeOther)
		return
	}
	if err := s.openApp(r, sess, chi.URLParam(r, "app")); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, tryURL(sess.ID), http.StatusSeeOther)
}

// handleTryClose is the no-script path for a window's close button.
func (s *Site) handleTryClose(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(chi.URLParam(r, "session"))
	if err != nil {
		http.Redirect(w, r, "/try", http.StatusSeeOther)
		return
	}
	s.closeApp(r, sess, chi.URLParam(r, "app"))
	http.Redirect(w, r, tryURL(sess.ID), http.StatusSeeOther)
}

func (s *Site) handleDesktopMount(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Mount()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, newDesktopResponse(sess))
}

// desktopSession resolves the {session} URL param, writing a 404 if it
// is unknown.
func (s *Site) desktopSession(w http.ResponseWriter, r *http.Request) (*desktop.Session, bool) {
	sess, err := s.sessions.Get(chi.URLParam(r, "session"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return nil, false
	}
	return sess, true
}

func (s *Site) handleDesktopGet(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.desktopSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newDesktopResponse(sess))
}

func (s *Site) handleDesktopOpen(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.desktopSession(w, r)
	if !ok {
		return
	}
	if err := s.openApp(r, sess, chi.URLParam(r, "app")); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, desktop.ErrUnknownApp) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, newDesktopResponse(sess))
}

func (s *Site) handleDesktopClose(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.desktopSession(w, r)
	if !ok {
		return
	}
	s.closeApp(r, sess, chi.URLParam(r, "app"))
	writeJSON(w, http.StatusOK, newDesktopResponse(sess))
}

func (s *Site) handleDownload(w http.ResponseWriter, r *http.Request) {
	s.record(r.Context(), analytics.KindDownloadStart, s.cfg.DownloadURL, "api")
	writeJSON(w, http.StatusOK, downloadResponse{URL: s.cfg.DownloadURL})
}

// safeReturn keeps redirects on this site. Anything that is not a local
// absolute path falls back to the home page.
func safeReturn(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	u, err := url.Parse(target)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return "/"
	}
	return u.RequestURI()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
