package desktop

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownApp is returned when an id is not in the dock table.
	ErrUnknownApp = errors.New("unknown application")
	// ErrSessionNotFound is returned for expired or never-mounted sessions.
	ErrSessionNotFound = errors.New("desktop session not found")
)

// App describes one dock entry.
type App struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// apps is the dock, in display order. Ids are unique.
var apps = []App{
	{ID: "files", Name: "Files", Icon: "📁", Color: "blue-500"},
	{ID: "firefox", Name: "Firefox", Icon: "🌐", Color: "orange-500"},
	{ID: "terminal", Name: "Terminal", Icon: "⌨️", Color: "gray-800"},
	{ID: "libreoffice", Name: "LibreOffice", Icon: "📄", Color: "blue-600"},
	{ID: "calculator", Name: "Calculator", Icon: "🧮", Color: "gray-600"},
	{ID: "settings", Name: "Settings", Icon: "⚙️", Color: "gray-700"},
	{ID: "store", Name: "Software", Icon: "📦", Color: "orange-600"},
	{ID: "music", Name: "Music", Icon: "🎵", Color: "purple-600"},
}

var appIndex = func() map[string]int {
	m := make(map[string]int, len(apps))
	for i, a := range apps {
		m[a.ID] = i
	}
	return m
}()

// Apps returns a copy of the dock table.
func Apps() []App {
	out := make([]App, len(apps))
	copy(out, apps)
	return out
}

// Lookup returns the descriptor for id.
func Lookup(id string) (App, bool) {
	i, ok := appIndex[id]
	if !ok {
		return App{}, false
	}
	return apps[i], true
}

// ValidateIDs returns ErrUnknownApp for the first id not in the table.
func ValidateIDs(ids []string) error {
	for _, id := range ids {
		if _, ok := appIndex[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownApp, id)
		}
	}
	return nil
}
