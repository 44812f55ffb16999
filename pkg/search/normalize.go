package search

import (
	"strconv"
	"strings"
	"time"
)

// NormalizeDate converts a recognized date literal to the canonical
// YYYY-MM-DD form used by record dates. It reports ok=false when the
// literal cannot be normalized, in which case the caller falls back to
// free-text matching.
//
// Slash forms (MM/DD/YYYY, M/D/YYYY) are interpreted as month/day/year
// and rendered through time.Date in the local time zone. This mirrors
// the behavior the hospital front end has always had: callers in other
// time zones may observe off-by-one-day mismatches near midnight.
// time.Date also normalizes out-of-range components (month 13 rolls
// into the next year) instead of rejecting them, which is likewise
// long-standing behavior we keep.
//
// Dash forms that are exactly 10 characters are passed through
// unchanged. ISO dates are already canonical; an MM-DD-YYYY literal is
// also passed through and therefore matches no record, matching the
// original front end.
func NormalizeDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)

	if strings.Contains(raw, "/") {
		parts := strings.Split(raw, "/")
		if len(parts) != 3 {
			return "", false
		}
		month, err := strconv.Atoi(parts[0])
		if err != nil {
			return "", false
		}
		day, err := strconv.Atoi(parts[1])
		if err != nil {
			return "", false
		}
		year, err := strconv.Atoi(parts[2])
		if err != nil {
			return "", false
		}
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
		return t.Format("2006-01-02"), true
	}

	if strings.Contains(raw, "-") && len(raw) == 10 {
		return raw, true
	}

	return "", false
}
