package assets

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func relPaths(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.RelPath
	}
	sort.Strings(out)
	return out
}

func TestWalk_IncludeDoubleStar(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "css/site.css", "body{}")
	writeFile(t, root, "img/icons/logo.svg", "<svg/>")
	writeFile(t, root, "notes.md", "# notes")

	files, err := Walk(Config{RootDir: root, Include: []string{"**/*.css", "**/*.svg"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	got := relPaths(files)
	want := []string{"css/site.css", "img/icons/logo.svg"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalk_ExcludeFilter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "site.css", "a")
	writeFile(t, root, "site.min.css", "b")

	files, err := Walk(Config{RootDir: root, Exclude: []string{"*.min.css"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if got := relPaths(files); len(got) != 1 || got[0] != "site.css" {
		t.Errorf("got %v, want [site.css]", got)
	}
}

func TestWalk_DefaultExcludeDirs(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"node_modules", ".git", "dist"} {
		writeFile(t, root, dir+"/file.js", "x")
	}
	writeFile(t, root, "app.js", "const x = 1;")

	files, err := Walk(Config{RootDir: root})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if got := relPaths(files); len(got) != 1 || got[0] != "app.js" {
		t.Errorf("got %v, want [app.js]", got)
	}
}

func TestWalk_IgnoreFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".assetignore", "# drafts\n*.psd\n")
	writeFile(t, root, "hero.png", "png")
	writeFile(t, root, "hero.psd", "psd")

	files, err := Walk(Config{RootDir: root})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if got := relPaths(files); len(got) != 1 || got[0] != "hero.png" {
		t.Errorf("got %v, want [hero.png]", got)
	}
}

func TestWalk_SkipsLargeFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "small.txt", "small")
	big := make([]byte, 200)
	for i := range big {
		big[i] = 'A'
	}
	writeFile(t, root, "big.txt", string(big))

	files, err := Walk(Config{RootDir: root, MaxFileSize: 100})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	for _, f := range files {
		if f.RelPath == "big.txt" {
			t.Error("big.txt should have been skipped (exceeds MaxFileSize)")
		}
	}
}

func TestWalk_FileFields(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "site.css", "body{}")

	files, err := Walk(Config{RootDir: root})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	f := files[0]
	if f.Size != 6 {
		t.Errorf("Size = %d, want 6", f.Size)
	}
	if f.MediaType != "text/css; charset=utf-8" {
		t.Errorf("MediaType = %q", f.MediaType)
	}
	if len(f.ContentHash) != 64 {
		t.Errorf("ContentHash length = %d, want 64", len(f.ContentHash))
	}
	if len(f.Fingerprint()) != 8 {
		t.Errorf("Fingerprint = %q", f.Fingerprint())
	}
}

func TestWalk_InvalidPattern(t *testing.T) {
	if _, err := Walk(Config{RootDir: t.TempDir(), Include: []string{"[unclosed"}}); err == nil {
		t.Fatal("expected error for malformed pattern")
	}
}

func TestCopy(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, src, "img/logo.svg", "<svg/>")

	files, err := Walk(Config{RootDir: src})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	for _, f := range files {
		if err := Copy(f, dst); err != nil {
			t.Fatalf("Copy() error: %v", err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dst, "img", "logo.svg"))
	if err != nil {
		t.Fatalf("reading copy: %v", err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("copied content = %q", data)
	}
}

func TestDetectMediaType(t *testing.T) {
	tests := map[string]string{
		"site.JS":   "text/javascript; charset=utf-8",
		"logo.svg":  "image/svg+xml",
		"photo.jpg": "image/jpeg",
		"README":    "application/octet-stream",
	}
	for name, want := range tests {
		if got := DetectMediaType(name); got != want {
			t.Errorf("DetectMediaType(%q) = %q, want %q", name, got, want)
		}
	}
}
