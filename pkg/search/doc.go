// Package search implements the record search and filter engine for chartgrep.
//
// # Overview
//
// This package combines a free-text or date query with structured filters
// over an in-memory collection of medical records. It serves as the search
// backend for both the REST API and the CLI, so the same semantics apply
// regardless of how a search is invoked.
//
// # Architecture
//
// The engine is a composition of small, stateless pieces:
//
//   - Classify: decides whether a raw query is a date literal or free text
//   - NormalizeDate: converts recognized date literals to YYYY-MM-DD
//   - Matcher: case-insensitive substring matching across a fixed, ordered
//     set of record fields (SubstringMatcher is the default implementation)
//   - Filters: structured AND-combined predicates (doctor, department,
//     payment status, exact date, inclusive date range)
//   - Service: the orchestrator tying the above together
//
// The Matcher is an interface so the linear field scan can later be swapped
// for an index-backed lookup without changing the Service contract.
//
// # Behavior
//
// Every call is a pure, synchronous computation over the collection it is
// given. No component retains state between calls; query text and filter
// values live in the caller, which re-invokes the engine on every change.
//
//   - An empty or whitespace-only query applies no text filtering at all
//     (distinct from matching nothing).
//   - Date literals are matched against the record date by exact string
//     equality. A date literal that fails normalization silently falls
//     back to free-text matching; parse problems never surface as errors.
//   - Structured filters always apply, with or without a query.
//   - Results preserve input collection order. There is no ranking,
//     pagination or deduplication; "found N results" is the output length.
//
// # Usage
//
//	svc := search.NewService(search.NewSubstringMatcher())
//	filters := search.Filters{SelectedDepartment: "Cardiology"}
//	result := svc.Search(recs, "paracetamol", filters)
//	fmt.Printf("Found %d results (%d active filters)\n",
//		len(result.Records), filters.ActiveCount())
//
// Parsing HTTP parameters:
//
//	query, filters, err := search.ParseParams(r.URL.Query())
//	if err != nil {
//		// invalid date parameter
//	}
//	result := svc.Search(snapshot, query, filters)
package search
