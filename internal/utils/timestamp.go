package utils

import "time"

// timestamp layouts accepted from request bodies, tried in order
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp turns a client-supplied date string into a UTC timestamp.
// An unparseable value comes back as the zero time rather than an error;
// callers that want to reject bad input must check IsZero themselves.
func ParseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC()
		}
	}

	return time.Time{}
}
