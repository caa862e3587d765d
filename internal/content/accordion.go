package content

import (
	"net/url"
	"strconv"
)

// FAQParam is the query parameter carrying the open FAQ index.
const FAQParam = "faq"

// Accordion tracks which item of a list is expanded. At most one is open.
type Accordion struct {
	open int // -1 when none
	size int
}

// NewAccordion returns a collapsed accordion over size items.
func NewAccordion(size int) Accordion {
	return Accordion{open: -1, size: size}
}

// AccordionFromQuery restores the open index from a request query. Missing
// or out-of-range values leave every item collapsed.
func AccordionFromQuery(q url.Values, size int) Accordion {
	a := NewAccordion(size)
	if n, err := strconv.Atoi(q.Get(FAQParam)); err == nil && n >= 0 && n < size {
		a.open = n
	}
	return a
}

// Toggle opens i, or collapses it if it is already the open item.
// Out-of-range indexes are ignored.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= a.size {
		return
	}
	if a.open == i {
		a.open = -1
		return
	}
	a.open = i
}

// IsOpen reports whether item i is expanded.
func (a Accordion) IsOpen(i int) bool { return a.open == i }

// Open returns the expanded index, if any.
func (a Accordion) Open() (int, bool) { return a.open, a.open >= 0 }

// ToggleHref returns the URL that shows the accordion after toggling i.
func (a Accordion) ToggleHref(current *url.URL, i int) string {
	next := a
	next.Toggle(i)

	q := current.Query()
	if n, ok := next.Open(); ok {
		q.Set(FAQParam, strconv.Itoa(n))
	} else {
		q.Del(FAQParam)
	}
	u := url.URL{Path: current.Path, RawQuery: q.Encode(), Fragment: "faq"}
	return u.String()
}
