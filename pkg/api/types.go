package api

import (
	"time"

	"github.com/chartgrep/chartgrep/pkg/records"
)

// SearchResponse is the /api/search payload: the filtered records plus
// the counts the front end shows as badges.
type SearchResponse struct {
	Query         string           `json:"query"`
	Records       []records.Record `json:"records"`
	TotalCount    int              `json:"total_count"`
	ActiveFilters int              `json:"active_filters"`
}

// ListRecordsResponse is the /api/records payload.
type ListRecordsResponse struct {
	Records []records.Record `json:"records"`
	Count   int              `json:"count"`
}

// DoctorsResponse is the /api/doctors payload used by the filter panel.
type DoctorsResponse struct {
	Doctors []records.Doctor `json:"doctors"`
	Count   int              `json:"count"`
}

// DepartmentsResponse is the /api/departments payload used by the
// filter panel.
type DepartmentsResponse struct {
	Departments []string `json:"departments"`
	Count       int      `json:"count"`
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// ErrorResponse is the error payload for all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
