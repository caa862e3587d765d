package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strconv"

	"github.com/ziadkadry99/switchubuntu/internal/nav"
	"github.com/ziadkadry99/switchubuntu/internal/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// staticFiles returns the embedded assets rooted at static/.
func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Page is the data every template receives. Body holds the page-specific
// view model.
type Page struct {
	Title         string
	Path          string
	Theme         theme.Flag
	Nav           []nav.Link
	Menu          nav.Menu
	MenuHref      string
	ReturnTo      string
	Brand         string
	DownloadLabel string
	DownloadURL   string
	// Static is set for exported pages: there is no server behind the
	// forms, so site.js handles every interaction in the browser.
	Static bool
	// Base prefixes every site-relative link, for exports hosted under a
	// sub-path. Empty when served from the root.
	Base string
	Body any
}

var funcs = template.FuncMap{
	"percent": func(f float64) string { return strconv.FormatFloat(f, 'f', 0, 64) },
	"inc":     func(i int) int { return i + 1 },
}

// Renderer holds one template set per page, each sharing the layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, p := range pages {
		t, err := template.New(p.Template).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+p.Template+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", p.Template, err)
		}
		r.pages[p.Template] = t
	}
	return r, nil
}

// Render writes the named page. Output is buffered so a template error
// never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, name string, page *Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page template %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
