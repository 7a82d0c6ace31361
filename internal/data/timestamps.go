package data

import (
	"fmt"
	"time"
)

// timestampLayouts covers the formats seen across the source exports:
// RFC3339 from our own writers, space-separated naive timestamps from
// the upstream CSV fixtures.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseTimestamp parses s with the first matching layout. Naive
// timestamps are interpreted in loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}
