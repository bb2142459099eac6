package classify

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// dateLayouts are the formats feeds actually emit, tried before the
// generic parser: RFC 822 style with numeric zone, ISO 8601, and the
// two bare forms sources use when they drop the time component.
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a feed timestamp. The explicit layouts run first so
// common cases stay predictable; anything else goes through dateparse.
// The second return value is false when nothing matched.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// IsRecent reports whether a published timestamp falls within daysBack
// of now. Unparseable timestamps count as recent: a feed with a broken
// date should not silently vanish from the pipeline.
func IsRecent(published string, daysBack int, now time.Time) bool {
	t, ok := ParseDate(published)
	if !ok {
		return true
	}
	cutoff := now.AddDate(0, 0, -daysBack)
	return !t.Before(cutoff)
}
