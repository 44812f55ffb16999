package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/chartgrep/chartgrep/pkg/records"
)

// Result contains the outcome of a search operation. Records preserve
// the input collection order.
type Result struct {
	// Records is the filtered collection.
	Records []records.Record

	// TotalCount is len(Records), kept explicit for the
	// "Found N results" badge.
	TotalCount int

	// ActiveFilters is the active-filter count for the filter badge.
	ActiveFilters int

	// Query is the raw query the search ran with.
	Query string
}

// Service is the search orchestrator. It composes the query
// classifier, the date normalizer, the field matcher and the
// structured filters into a single operation.
type Service struct {
	matcher Matcher
}

// NewService creates a search service using the provided matcher.
// Pass NewSubstringMatcher() unless an alternative matcher is wired in.
func NewService(matcher Matcher) *Service {
	return &Service{matcher: matcher}
}

// Search runs the query and filters against recs and returns the
// filtered collection. The call is pure: identical inputs produce
// identical output, and recs is never mutated.
//
// A query that looks like a date literal filters by exact record date
// after normalization; if normalization fails the query silently falls
// back to free-text matching. An empty query applies no text filtering.
// Structured filters always apply.
func (s *Service) Search(recs []records.Record, query string, filters Filters) Result {
	matched := recs

	trimmed := strings.TrimSpace(query)
	if trimmed != "" {
		switch Classify(trimmed) {
		case KindDate:
			if iso, ok := NormalizeDate(trimmed); ok {
				matched = keep(recs, func(r *records.Record) bool {
					return r.Date == iso
				})
			} else {
				matched = s.textSearch(recs, trimmed)
			}
		case KindText:
			matched = s.textSearch(recs, trimmed)
		}
	}

	matched = filters.Apply(matched)

	return Result{
		Records:       matched,
		TotalCount:    len(matched),
		ActiveFilters: filters.ActiveCount(),
		Query:         query,
	}
}

func (s *Service) textSearch(recs []records.Record, trimmed string) []records.Record {
	term := strings.ToLower(trimmed)
	return keep(recs, func(r *records.Record) bool {
		return s.matcher.Matches(r, term)
	})
}

// ParseParams parses HTTP query parameters into a query string and a
// Filters value. Supported parameters:
//
//   - q: search query
//   - date: exact record date (YYYY-MM-DD)
//   - doctor: doctor ID
//   - department: department name
//   - payment_status: billing payment status
//   - start_date, end_date: inclusive date range (YYYY-MM-DD)
//
// Date-valued parameters must be well-formed ISO dates; anything else
// is rejected so the API can answer 400 instead of silently matching
// nothing.
func ParseParams(queryParams map[string][]string) (string, Filters, error) {
	var query string
	var filters Filters

	if q := queryParams["q"]; len(q) > 0 {
		query = q[0]
	}

	dateParams := []struct {
		name string
		dst  *string
	}{
		{"date", &filters.SelectedDate},
		{"start_date", &filters.DateRange.Start},
		{"end_date", &filters.DateRange.End},
	}
	for _, p := range dateParams {
		if v := queryParams[p.name]; len(v) > 0 && v[0] != "" {
			if _, err := time.Parse("2006-01-02", v[0]); err != nil {
				return "", Filters{}, fmt.Errorf("parsing %s: %w", p.name, err)
			}
			*p.dst = v[0]
		}
	}

	if v := queryParams["doctor"]; len(v) > 0 {
		filters.SelectedDoctor = v[0]
	}
	if v := queryParams["department"]; len(v) > 0 {
		filters.SelectedDepartment = v[0]
	}
	if v := queryParams["payment_status"]; len(v) > 0 {
		filters.SelectedPaymentStatus = v[0]
	}

	return query, filters, nil
}
