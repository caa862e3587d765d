package site

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ziadkadry99/switchubuntu/internal/assets"
	"github.com/ziadkadry99/switchubuntu/internal/progress"
	"github.com/ziadkadry99/switchubuntu/internal/theme"
)

// ExportOptions controls Export.
type ExportOptions struct {
	OutputDir string
	// BasePath is the URL path the export will be hosted under, such as
	// "/switch" for https://example.com/switch/. Empty means the root.
	BasePath string
	// Assets names extra files copied next to the pages. An empty
	// RootDir skips them.
	Assets   assets.Config
	Reporter progress.Reporter
}

// ExportResult counts what Export wrote.
type ExportResult struct {
	Pages  int
	Static int
	Assets int
}

// Export writes every page, the embedded static files and any extra
// assets to opts.OutputDir so the site can be hosted without a server.
// Exported pages keep the theme in the browser's localStorage.
func (s *Site) Export(ctx context.Context, opts ExportOptions) (*ExportResult, error) {
	if opts.OutputDir == "" {
		return nil, fmt.Errorf("export: output dir is required")
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	base := basePath(opts.BasePath)

	var extra []assets.File
	if opts.Assets.RootDir != "" {
		files, err := assets.Walk(opts.Assets)
		if err != nil {
			return nil, err
		}
		extra = files
	}

	var static []string
	err := fs.WalkDir(staticFiles(), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			static = append(static, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing static files: %w", err)
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, err
	}

	total := len(pages) + len(static) + len(extra)
	reporter.Start(total)
	done := 0
	step := func(msg string) {
		done++
		reporter.Update(done, msg)
	}

	res := &ExportResult{}
	for _, spec := range pages {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := s.exportPage(spec, opts.OutputDir, base); err != nil {
			return res, err
		}
		res.Pages++
		step(spec.Path)
	}

	for _, p := range static {
		data, err := fs.ReadFile(staticFiles(), p)
		if err != nil {
			return res, err
		}
		dst := filepath.Join(opts.OutputDir, "static", filepath.FromSlash(p))
		if err := writeFile(dst, data); err != nil {
			return res, err
		}
		res.Static++
		step("static/" + p)
	}

	for _, f := range extra {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := assets.Copy(f, opts.OutputDir); err != nil {
			return res, err
		}
		s.logger.Debug("copied asset",
			zap.String("path", f.RelPath),
			zap.String("type", f.MediaType),
			zap.String("hash", f.Fingerprint()),
		)
		res.Assets++
		step(f.RelPath)
	}

	reporter.Finish()
	s.logger.Info("export complete",
		zap.String("dir", opts.OutputDir),
		zap.String("base", base),
		zap.Int("pages", res.Pages),
		zap.Int("static", res.Static),
		zap.Int("assets", res.Assets),
	)
	return res, nil
}

func (s *Site) exportPage(spec pageSpec, outDir, base string) error {
	u := &url.URL{Path: base + spec.Path}
	body, err := spec.body(s, u)
	if err != nil {
		return fmt.Errorf("building %s: %w", spec.Path, err)
	}
	if tb, ok := body.(*tryBody); ok {
		defer s.sessions.Unmount(tb.Session)
	}

	page := s.newPage(spec, u, theme.Light, body)
	page.Static = true
	page.Base = base

	var sb strings.Builder
	if err := s.renderer.Render(&sb, spec.Template, page); err != nil {
		return err
	}
	return writeFile(filepath.Join(outDir, exportPath(spec.Path)), []byte(sb.String()))
}

// basePath normalises a hosting prefix to "/a/b" form, or "" for the root.
func basePath(p string) string {
	cleaned := path.Clean("/" + strings.TrimSpace(p))
	if cleaned == "/" {
		return ""
	}
	return cleaned
}

// exportPath maps a route to its file: "/" is index.html, "/try" is
// try/index.html so that static hosts serve it at the same URL.
func exportPath(route string) string {
	trimmed := strings.Trim(route, "/")
	if trimmed == "" {
		return "index.html"
	}
	return filepath.FromSlash(path.Join(trimmed, "index.html"))
}

func writeFile(dst string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
