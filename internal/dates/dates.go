// Package dates produces the calendar-date bucket keys used by every
// score row and aggregation window. All dates are the server's local
// calendar date; there is no per-player timezone.
package dates

import "time"

// Layout is the date bucket key format. Lexicographic comparison of
// keys in this layout is date comparison.
const Layout = "2006-01-02"

// Key returns the calendar-date key for t.
func Key(t time.Time) string {
	return t.Format(Layout)
}

// Today returns the key for now's calendar date.
func Today(now time.Time) string {
	return Key(now)
}

// Yesterday returns the key for the calendar date before now's.
func Yesterday(now time.Time) string {
	return Key(now.AddDate(0, 0, -1))
}

// WeekStart returns the key of the Monday of now's week. The week
// window must be recomputed on every evaluation, never cached.
func WeekStart(now time.Time) string {
	wd := int(now.Weekday())
	if wd == 0 {
		wd = 7 // Sunday
	}
	return Key(now.AddDate(0, 0, -(wd - 1)))
}

// IsMonday reports whether now falls on a Monday, which gates the
// weekly reveal.
func IsMonday(now time.Time) bool {
	return now.Weekday() == time.Monday
}
