package normalize

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DateLayout is the output format for every successfully parsed date.
const DateLayout = "01/02/2006"

// The first layout is only tried for a literal GMT suffix. The two
// day-first layouts cover Azure's lastBuildDate variants.
var sourceLayouts = []string{
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 Z0700",
	time.RFC3339,
	"2006-01-02",
	"January 2, 2006",
	"2 Jan 2006 15:04:05 Z0700",
	"2 January 2006 15:04:05 Z0700",
}

var isoPrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// FormatDate converts a date string in any known source format to MM/DD/YYYY.
// Empty input and "N/A" yield "N/A". Input that cannot be parsed is returned
// unchanged and logged.
func FormatDate(raw string) string {
	if raw == "" || raw == "N/A" {
		return "N/A"
	}
	if t, ok := ParseSourceDate(raw); ok {
		return t.Format(DateLayout)
	}
	slog.Warn("Could not parse date string with known formats", "date", raw)
	return raw
}

// ParseSourceDate tries the known source layouts in order, then a generic
// ISO 8601 parse for strings that start with a calendar date.
func ParseSourceDate(raw string) (time.Time, bool) {
	for i, layout := range sourceLayouts {
		if i == 0 && !strings.HasSuffix(raw, " GMT") {
			continue
		}
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	if isoPrefix.MatchString(raw) {
		if t, err := dateparse.ParseIn(raw, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
