package assets

import (
	"path/filepath"
	"strings"
)

var extensionToMediaType = map[string]string{
	".css":   "text/css; charset=utf-8",
	".js":    "text/javascript; charset=utf-8",
	".mjs":   "text/javascript; charset=utf-8",
	".json":  "application/json",
	".html":  "text/html; charset=utf-8",
	".txt":   "text/plain; charset=utf-8",
	".svg":   "image/svg+xml",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".webp":  "image/webp",
	".ico":   "image/x-icon",
	".woff":  "font/woff",
	".woff2": "font/woff2",
}

// DetectMediaType returns the Content-Type for a file name, or
// application/octet-stream when the extension is unknown.
func DetectMediaType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if mt, ok := extensionToMediaType[ext]; ok {
		return mt
	}
	return "application/octet-stream"
}
