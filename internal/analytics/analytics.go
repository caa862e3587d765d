// Package analytics keeps an append-only trail of visitor interactions.
package analytics

import "time"

// Kind describes what happened.
type Kind string

const (
	KindPageView      Kind = "page_view"
	KindThemeToggle   Kind = "theme_toggle"
	KindAppOpen       Kind = "app_open"
	KindAppClose      Kind = "app_close"
	KindDownloadStart Kind = "download_start"
)

// Kinds lists every event kind.
var Kinds = []Kind{KindPageView, KindThemeToggle, KindAppOpen, KindAppClose, KindDownloadStart}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	for _, v := range Kinds {
		if v == k {
			return true
		}
	}
	return false
}

// Event is a single analytics record. Subject is the page path, theme or
// app id the event concerns. VisitorID is the visitor cookie value and is
// never encoded, since presenting it as a cookie impersonates the visitor.
type Event struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	VisitorID string    `json:"-"`
	Kind      Kind      `json:"kind"`
	Subject   string    `json:"subject,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}
