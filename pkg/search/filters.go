package search

import (
	"time"

	"github.com/chartgrep/chartgrep/pkg/records"
)

// DateRange is an inclusive calendar-date range. Both ends must be set
// for the range to take effect; a partial range filters nothing.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Filters holds the structured (non-free-text) search constraints
// chosen via the filter controls. The zero value means "no filtering".
// Filters are read-only to the engine; the caller mutates them
// field-by-field and re-runs the search.
type Filters struct {
	SelectedDate          string    `json:"selectedDate"`
	SelectedDoctor        string    `json:"selectedDoctor"`
	SelectedDepartment    string    `json:"selectedDepartment"`
	SelectedPaymentStatus string    `json:"selectedPaymentStatus"`
	DateRange             DateRange `json:"dateRange"`
}

// ActiveCount returns the number of non-empty filter dimensions, used
// for the "N active filters" badge. The date range counts once no
// matter how many of its ends are set.
func (f Filters) ActiveCount() int {
	count := 0
	if f.SelectedDate != "" {
		count++
	}
	if f.SelectedDoctor != "" {
		count++
	}
	if f.SelectedDepartment != "" {
		count++
	}
	if f.SelectedPaymentStatus != "" {
		count++
	}
	if f.DateRange.Start != "" || f.DateRange.End != "" {
		count++
	}
	return count
}

// Apply filters recs with each active constraint AND-combined. The
// cheap exact-match filters run before date-range parsing. Order of
// application does not change the result; all predicates are
// independent. The input slice is never modified.
func (f Filters) Apply(recs []records.Record) []records.Record {
	out := recs

	if f.SelectedDate != "" {
		out = keep(out, func(r *records.Record) bool {
			return r.Date == f.SelectedDate
		})
	}

	if f.SelectedDoctor != "" {
		out = keep(out, func(r *records.Record) bool {
			return r.Doctor.ID == f.SelectedDoctor
		})
	}

	if f.SelectedDepartment != "" {
		out = keep(out, func(r *records.Record) bool {
			return r.Doctor.Department == f.SelectedDepartment
		})
	}

	if f.SelectedPaymentStatus != "" {
		out = keep(out, func(r *records.Record) bool {
			return r.Billing.PaymentStatus == f.SelectedPaymentStatus
		})
	}

	if f.DateRange.Start != "" && f.DateRange.End != "" {
		start, errStart := time.Parse("2006-01-02", f.DateRange.Start)
		end, errEnd := time.Parse("2006-01-02", f.DateRange.End)
		if errStart != nil || errEnd != nil {
			// An unparseable range can match nothing. Not validated
			// upstream; an empty result is acceptable, not an error.
			return []records.Record{}
		}
		out = keep(out, func(r *records.Record) bool {
			d, err := time.Parse("2006-01-02", r.Date)
			if err != nil {
				return false
			}
			return !d.Before(start) && !d.After(end)
		})
	}

	return out
}

func keep(recs []records.Record, pred func(*records.Record) bool) []records.Record {
	out := make([]records.Record, 0, len(recs))
	for i := range recs {
		if pred(&recs[i]) {
			out = append(out, recs[i])
		}
	}
	return out
}
