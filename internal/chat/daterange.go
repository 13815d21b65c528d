package chat

import (
	"strings"
	"time"
)

// DateIntent is a date window the user referred to in their message.
type DateIntent struct {
	Type  string // "single_day", "range", or "none"
	Date  string // set for single_day
	Start string // set for range
	End   string // set for range
}

const isoDate = "2006-01-02"

// ExtractDateIntent recognizes a few common relative date phrases. The
// current time is a parameter so tests get deterministic output.
func ExtractDateIntent(message string, now time.Time) DateIntent {
	text := strings.ToLower(message)

	if strings.Contains(text, "yesterday") {
		return DateIntent{
			Type: "single_day",
			Date: now.AddDate(0, 0, -1).Format(isoDate),
		}
	}

	if strings.Contains(text, "last week") {
		end := now.AddDate(0, 0, -1)
		start := end.AddDate(0, 0, -6)
		return DateIntent{
			Type:  "range",
			Start: start.Format(isoDate),
			End:   end.Format(isoDate),
		}
	}

	return DateIntent{Type: "none"}
}
