package site

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/ziadkadry99/switchubuntu/internal/analytics"
	"github.com/ziadkadry99/switchubuntu/internal/content"
	"github.com/ziadkadry99/switchubuntu/internal/desktop"
	"github.com/ziadkadry99/switchubuntu/internal/nav"
	"github.com/ziadkadry99/switchubuntu/internal/theme"
)

// CategoryParam selects the software category tab.
const CategoryParam = "category"

// SessionParam carries the mounted desktop id on /try.
const SessionParam = "session"

type pageSpec struct {
	Path     string
	Template string
	Title    string
	body     func(s *Site, u *url.URL) (any, error)
}

// pages lists every navigable route in nav order.
var pages = []pageSpec{
	{Path: "/", Template: "home", Title: "Switch to Ubuntu", body: (*Site).homeBody},
	{Path: "/try", Template: "try", Title: "Try Ubuntu", body: (*Site).tryBody},
	{Path: "/installation", Template: "installation", Title: "Installation Guide", body: (*Site).installationBody},
	{Path: "/software", Template: "software", Title: "Software", body: (*Site).softwareBody},
	{Path: "/community", Template: "community", Title: "Community", body: (*Site).communityBody},
	{Path: "/why-ubuntu", Template: "why", Title: "Why Ubuntu?", body: (*Site).whyBody},
}

type faqItem struct {
	content.FAQ
	Index int
	Open  bool
	Href  string
}

type homeBody struct {
	Stats      []content.Stat
	Benefits   []content.Feature
	Comparison []content.ComparisonRow
	FAQs       []faqItem
}

type windowView struct {
	desktop.Window
	Open bool
}

type tryBody struct {
	Session    string
	Windows    []windowView
	Dock       []desktop.DockItem
	Clock      desktop.Reading
	Terminal   []desktop.TerminalLine
	Folders    []desktop.Folder
	BrowserURL string
}

type installationBody struct {
	content.Installation
	Recommended string
	Guide       template.HTML
}

type categoryTab struct {
	content.Category
	Active bool
	Href   string
}

type softwareBody struct {
	Tabs        []categoryTab
	InstallWays []content.Feature
}

// newPage fills the fields shared by every page.
func (s *Site) newPage(spec pageSpec, u *url.URL, flag theme.Flag, body any) *Page {
	menu := nav.MenuFromQuery(u.Query())
	return &Page{
		Title:         spec.Title,
		Path:          spec.Path,
		Theme:         flag,
		Nav:           nav.Links(spec.Path),
		Menu:          menu,
		MenuHref:      menu.ToggleHref(u),
		ReturnTo:      u.RequestURI(),
		Brand:         nav.Brand,
		DownloadLabel: nav.DownloadLabel,
		DownloadURL:   s.cfg.DownloadURL,
		Body:          body,
	}
}

// visitorTheme reads the visitor's flag through the shared registry.
func (s *Site) visitorTheme(ctx context.Context) theme.Flag {
	id := VisitorID(ctx)
	store := s.themes.For(id)
	defer s.themes.Release(id)
	return store.Theme(ctx)
}

// servePage returns the GET handler for one page.
func (s *Site) servePage(spec pageSpec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		body, err := spec.body(s, r.URL)
		if err != nil {
			s.logger.Error("building page", zap.String("path", spec.Path), zap.Error(err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		page := s.newPage(spec, r.URL, s.visitorTheme(ctx), body)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := s.renderer.Render(w, spec.Template, page); err != nil {
			s.logger.Error("rendering page", zap.String("path", spec.Path), zap.Error(err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		s.record(ctx, analytics.KindPageView, spec.Path, "")
	}
}

func (s *Site) homeBody(u *url.URL) (any, error) {
	acc := content.AccordionFromQuery(u.Query(), len(s.catalog.FAQs))
	faqs := make([]faqItem, len(s.catalog.FAQs))
	for i, f := range s.catalog.FAQs {
		faqs[i] = faqItem{FAQ: f, Index: i, Open: acc.IsOpen(i), Href: acc.ToggleHref(u, i)}
	}
	return &homeBody{
		Stats:      s.catalog.Stats,
		Benefits:   s.catalog.Benefits,
		Comparison: s.catalog.Comparison,
		FAQs:       faqs,
	}, nil
}

// tryBody shows the desktop named in the URL, mounting a fresh one when
// the id is missing or has expired.
func (s *Site) tryBody(u *url.URL) (any, error) {
	sess, err := s.sessions.Get(u.Query().Get(SessionParam))
	if errors.Is(err, desktop.ErrSessionNotFound) {
		sess, err = s.sessions.Mount()
	}
	if err != nil {
		return nil, err
	}
	return s.desktopBody(sess), nil
}

func (s *Site) desktopBody(sess *desktop.Session) *tryBody {
	dock := sess.Dock()
	windows := make([]windowView, 0, len(dock))
	for _, item := range dock {
		w, _ := desktop.WindowFor(item.ID)
		windows = append(windows, windowView{Window: w, Open: item.Open})
	}
	return &tryBody{
		Session:    sess.ID,
		Windows:    windows,
		Dock:       dock,
		Clock:      s.clock.Read(),
		Terminal:   desktop.TerminalLines(),
		Folders:    desktop.Folders(),
		BrowserURL: desktop.BrowserURL,
	}
}

func (s *Site) installationBody(*url.URL) (any, error) {
	guide, err := s.catalog.PostInstallHTML()
	if err != nil {
		return nil, err
	}
	body := &installationBody{Installation: s.catalog.Installation, Guide: guide}
	if m, ok := s.catalog.RecommendedMethod(); ok {
		body.Recommended = m.Title
	}
	return body, nil
}

func (s *Site) softwareBody(u *url.URL) (any, error) {
	selected := s.catalog.SoftwareCategory(u.Query().Get(CategoryParam))
	tabs := make([]categoryTab, len(s.catalog.Software.Categories))
	for i, c := range s.catalog.Software.Categories {
		q := u.Query()
		q.Set(CategoryParam, c.ID)
		href := url.URL{Path: u.Path, RawQuery: q.Encode(), Fragment: "catalog"}
		tabs[i] = categoryTab{Category: c, Active: c.ID == selected.ID, Href: href.String()}
	}
	return &softwareBody{Tabs: tabs, InstallWays: s.catalog.Software.InstallWays}, nil
}

func (s *Site) communityBody(*url.URL) (any, error) {
	return &s.catalog.Community, nil
}

func (s *Site) whyBody(*url.URL) (any, error) {
	return &s.catalog.Why, nil
}
