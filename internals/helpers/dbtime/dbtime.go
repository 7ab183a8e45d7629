// Conversions between the calendar-date strings used on the wire and the
// timestamptz values stored in the DB. Date-only fields travel as YYYY-MM-DD;
// audit stamps travel as RFC3339.
package dbtime

import (
	"log"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ToDBTime parses a date string into a UTC timestamp pointer.
// Empty input yields nil so the column stays NULL instead of a zero time.
// Accepts YYYY-MM-DD (parsed at UTC midnight) or a full RFC3339 stamp.
func ToDBTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := time.ParseInLocation(DateLayout, s, time.UTC); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return &t
	}
	log.Printf("[WARN] dbtime: unparseable date %q, storing NULL", s)
	return nil
}

// FromDBTime renders a stored timestamp back to YYYY-MM-DD. Nil yields "".
func FromDBTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(DateLayout)
}

// ToISO renders a stored timestamp as a full RFC3339 string. Nil yields "".
func ToISO(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// IsValidDate reports whether s would survive ToDBTime without falling to NULL.
func IsValidDate(s string) bool {
	return ToDBTime(s) != nil
}
