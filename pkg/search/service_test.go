package search

import (
	"net/url"
	"reflect"
	"testing"
)

func newTestService() *Service {
	return NewService(NewSubstringMatcher())
}

func TestSearchEmptyQueryReturnsCollectionUnchanged(t *testing.T) {
	recs := sampleRecords()
	svc := newTestService()

	for _, query := range []string{"", "   "} {
		result := svc.Search(recs, query, Filters{})
		if !sameIDs(recordIDs(result.Records), "rx-001", "rx-002", "rx-003") {
			t.Errorf("Search(%q) changed the collection: %v", query, recordIDs(result.Records))
		}
		if result.TotalCount != len(recs) {
			t.Errorf("TotalCount = %d, want %d", result.TotalCount, len(recs))
		}
	}
}

func TestSearchIsIdempotent(t *testing.T) {
	recs := sampleRecords()
	svc := newTestService()
	filters := Filters{SelectedDepartment: "Cardiology"}

	first := svc.Search(recs, "rao", filters)
	second := svc.Search(recs, "rao", filters)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical searches produced different results")
	}
}

func TestSearchDateLiteralExactness(t *testing.T) {
	recs := sampleRecords()
	svc := newTestService()

	// rx-003's notes contain the substring "2025-07-26"; a date-literal
	// query must filter by record date only and ignore it.
	result := svc.Search(recs, "2025-07-26", Filters{})
	if !sameIDs(recordIDs(result.Records), "rx-001") {
		t.Errorf("date query matched %v, want [rx-001]", recordIDs(result.Records))
	}
}

func TestSearchSlashDateEquivalence(t *testing.T) {
	recs := sampleRecords()
	svc := newTestService()

	iso := svc.Search(recs, "2025-07-26", Filters{})
	slash := svc.Search(recs, "07/26/2025", Filters{})
	if !reflect.DeepEqual(recordIDs(iso.Records), recordIDs(slash.Records)) {
		t.Errorf("slash form matched %v, ISO form matched %v",
			recordIDs(slash.Records), recordIDs(iso.Records))
	}
}

func TestSearchDashDateLiteralMatchesNothing(t *testing.T) {
	recs := sampleRecords()
	svc := newTestService()

	// MM-DD-YYYY normalizes to itself and equals no record date.
	result := svc.Search(recs, "07-26-2025", Filters{})
	if len(result.Records) != 0 {
		t.Errorf("dash date literal matched %v, want none", recordIDs(result.Records))
	}
}

func TestSearchFreeTextCaseInsensitive(t *testing.T) {
	recs := sampleRecords()
	svc := newTestService()

	result := svc.Search(recs, "PARACETAMOL", Filters{})
	if !sameIDs(recordIDs(result.Records), "rx-002") {
		t.Errorf("Search(PARACETAMOL) = %v, want [rx-002]", recordIDs(result.Records))
	}
}

func TestSearchFiltersApplyWithAndWithoutQuery(t *testing.T) {
	recs := sampleRecords()
	svc := newTestService()

	// Filters alone.
	result := svc.Search(recs, "", Filters{SelectedDoctor: "doc-1"})
	if !sameIDs(recordIDs(result.Records), "rx-001", "rx-003") {
		t.Errorf("filters-only search = %v", recordIDs(result.Records))
	}
	if result.ActiveFilters != 1 {
		t.Errorf("ActiveFilters = %d, want 1", result.ActiveFilters)
	}

	// Query then filters: "rao" matches rx-001 and rx-003, the payment
	// status filter keeps the intersection.
	result = svc.Search(recs, "rao", Filters{SelectedPaymentStatus: "overdue"})
	if !sameIDs(recordIDs(result.Records), "rx-003") {
		t.Errorf("query+filter search = %v, want [rx-003]", recordIDs(result.Records))
	}
}

func TestSearchPreservesInputOrder(t *testing.T) {
	recs := sampleRecords()
	svc := newTestService()

	// "st. mary" matches every record; order must match the input.
	result := svc.Search(recs, "st. mary", Filters{})
	if !sameIDs(recordIDs(result.Records), "rx-001", "rx-002", "rx-003") {
		t.Errorf("result order = %v", recordIDs(result.Records))
	}
}

func TestParseParams(t *testing.T) {
	tests := []struct {
		name        string
		rawQuery    string
		wantQuery   string
		wantFilters Filters
		wantErr     bool
	}{
		{
			name:      "query only",
			rawQuery:  "q=paracetamol",
			wantQuery: "paracetamol",
		},
		{
			name:     "all filters",
			rawQuery: "q=rao&date=2025-07-26&doctor=doc-1&department=Cardiology&payment_status=paid&start_date=2025-01-01&end_date=2025-12-31",
			wantQuery: "rao",
			wantFilters: Filters{
				SelectedDate:          "2025-07-26",
				SelectedDoctor:        "doc-1",
				SelectedDepartment:    "Cardiology",
				SelectedPaymentStatus: "paid",
				DateRange:             DateRange{Start: "2025-01-01", End: "2025-12-31"},
			},
		},
		{
			name:     "empty values ignored",
			rawQuery: "date=&start_date=",
		},
		{
			name:     "invalid date rejected",
			rawQuery: "date=26-07-2025",
			wantErr:  true,
		},
		{
			name:     "invalid range end rejected",
			rawQuery: "end_date=notadate",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.rawQuery)
			if err != nil {
				t.Fatalf("parsing test query: %v", err)
			}

			query, filters, err := ParseParams(values)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseParams: %v", err)
			}
			if query != tt.wantQuery {
				t.Errorf("query = %q, want %q", query, tt.wantQuery)
			}
			if filters != tt.wantFilters {
				t.Errorf("filters = %+v, want %+v", filters, tt.wantFilters)
			}
		})
	}
}
