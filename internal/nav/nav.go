// Package nav describes the site's top navigation bar.
package nav

import "net/url"

// Brand is the site name shown at the left of the bar.
const Brand = "Switch to Ubuntu"

// DownloadLabel is the text of the external download link.
const DownloadLabel = "Download Ubuntu"

// Item is one internal navigation link.
type Item struct {
	Path  string
	Label string
}

// Items are the navigation links in display order.
var Items = []Item{
	{Path: "/", Label: "Home"},
	{Path: "/try", Label: "Try Ubuntu"},
	{Path: "/installation", Label: "Installation"},
	{Path: "/software", Label: "Software"},
	{Path: "/community", Label: "Community"},
	{Path: "/why-ubuntu", Label: "Why Ubuntu?"},
}

// IsActive reports whether path is the current route. The match is exact,
// so "/" is not active on "/try".
func IsActive(current, path string) bool {
	return current == path
}

// Link is an Item annotated for one render.
type Link struct {
	Item
	Active bool
}

// Links returns Items with the current route marked active.
func Links(current string) []Link {
	out := make([]Link, len(Items))
	for i, it := range Items {
		out[i] = Link{Item: it, Active: IsActive(current, it.Path)}
	}
	return out
}

// Known reports whether path is one of the navigation routes.
func Known(path string) bool {
	for _, it := range Items {
		if it.Path == path {
			return true
		}
	}
	return false
}

// MenuParam is the query parameter carrying the mobile menu state.
const MenuParam = "menu"

// Menu is the collapsible mobile navigation list. Closed by default.
type Menu struct {
	open bool
}

// MenuFromQuery restores the menu state from a request query.
func MenuFromQuery(q url.Values) Menu {
	return Menu{open: q.Get(MenuParam) == "open"}
}

// IsOpen reports whether the list is expanded.
func (m Menu) IsOpen() bool { return m.open }

// Toggle flips the menu.
func (m *Menu) Toggle() { m.open = !m.open }

// Close collapses the menu.
func (m *Menu) Close() { m.open = false }

// RouteChanged is called when a nav link is followed; it collapses the menu.
func (m *Menu) RouteChanged(string) { m.open = false }

// OutsideClick is called on a click outside the menu; it collapses it.
func (m *Menu) OutsideClick() { m.open = false }

// ToggleHref returns the URL of the current page with the menu toggled.
// Other query parameters are preserved.
func (m Menu) ToggleHref(current *url.URL) string {
	next := m
	next.Toggle()

	q := current.Query()
	if next.open {
		q.Set(MenuParam, "open")
	} else {
		q.Del(MenuParam)
	}
	u := url.URL{Path: current.Path, RawQuery: q.Encode()}
	return u.String()
}
