package desktop

import (
	"context"
	"time"
)

// Reading is one clock face: 24-hour time and short date.
type Reading struct {
	Time string `json:"time"`
	Date string `json:"date"`
}

// FormatTime renders t as HH:MM on a 24-hour clock.
func FormatTime(t time.Time) string { return t.Format("15:04") }

// FormatDate renders t as "Mon, Jan 2".
func FormatDate(t time.Time) string { return t.Format("Mon, Jan 2") }

// Clock produces Readings from Now. A nil Now uses time.Now.
type Clock struct {
	Now func() time.Time
}

// Read returns the current reading.
func (c Clock) Read() Reading {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	t := now()
	return Reading{Time: FormatTime(t), Date: FormatDate(t)}
}

// Tick calls fn with a reading immediately and then once per interval
// until ctx is cancelled.
func (c Clock) Tick(ctx context.Context, interval time.Duration, fn func(Reading)) {
	fn(c.Read())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(c.Read())
		}
	}
}
