package search

import (
	"regexp"
	"strings"
)

// Kind is the classification of a raw search query.
type Kind int

const (
	// KindText means the query is treated as a free-text search term.
	KindText Kind = iota
	// KindDate means the query looks like a calendar date literal and
	// should be matched against the record date.
	KindDate
)

// Date literal shapes recognized by Classify. Matching is purely on
// character shape (digit counts and separators); calendar validity is
// checked later during normalization.
var dateShapes = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),     // 2025-07-26
	regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`),     // 07/26/2025
	regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`),     // 07-26-2025
	regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`), // 7/26/2025
}

// Classify inspects a raw query and decides whether it is a date
// literal or free text. Callers are expected to have handled the
// empty-query case already; an empty string classifies as text.
func Classify(query string) Kind {
	q := strings.TrimSpace(query)
	if q == "" {
		return KindText
	}
	for _, shape := range dateShapes {
		if shape.MatchString(q) {
			return KindDate
		}
	}
	return KindText
}
