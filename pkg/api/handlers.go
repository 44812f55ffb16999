package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/chartgrep/chartgrep/pkg/records"
	"github.com/chartgrep/chartgrep/pkg/search"
	"github.com/chartgrep/chartgrep/pkg/version"
)

// HandleSearch runs the search engine over the current snapshot.
// Unlike the record listing it accepts a free-text or date query plus
// the structured filter parameters (see search.ParseParams).
func (s *Server) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query, filters, err := search.ParseParams(r.URL.Query())
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid date format", err.Error())
		return
	}

	result := s.search.Search(s.store.Records(), query, filters)

	s.writeJSON(w, http.StatusOK, SearchResponse{
		Query:         result.Query,
		Records:       result.Records,
		TotalCount:    result.TotalCount,
		ActiveFilters: result.ActiveFilters,
	})
}

// HandleListRecords returns the unfiltered snapshot, optionally capped
// with a limit parameter.
func (s *Server) HandleListRecords(w http.ResponseWriter, r *http.Request) {
	recs := s.store.Records()

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			s.writeError(w, http.StatusBadRequest, "Invalid limit", fmt.Sprintf("limit %q is not a non-negative integer", limitStr))
			return
		}
		if limit < len(recs) {
			recs = recs[:limit]
		}
	}

	s.writeJSON(w, http.StatusOK, ListRecordsResponse{
		Records: recs,
		Count:   len(recs),
	})
}

// HandleGetRecord returns one record by ID for the history viewer
// detail pane.
func (s *Server) HandleGetRecord(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.writeError(w, http.StatusBadRequest, "Invalid path", "Record ID is required")
		return
	}

	rec, ok := s.store.Record(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "Record not found", fmt.Sprintf("No record with id %q", id))
		return
	}

	s.writeJSON(w, http.StatusOK, rec)
}

// HandleDoctors returns the doctor directory for the filter panel.
func (s *Server) HandleDoctors(w http.ResponseWriter, r *http.Request) {
	doctors := s.store.Doctors()
	if doctors == nil {
		doctors = []records.Doctor{}
	}

	s.writeJSON(w, http.StatusOK, DoctorsResponse{
		Doctors: doctors,
		Count:   len(doctors),
	})
}

// HandleDepartments returns the department list for the filter panel.
func (s *Server) HandleDepartments(w http.ResponseWriter, r *http.Request) {
	departments := s.store.Departments()
	if departments == nil {
		departments = []string{}
	}

	s.writeJSON(w, http.StatusOK, DepartmentsResponse{
		Departments: departments,
		Count:       len(departments),
	})
}

// HandleStats returns snapshot aggregates.
func (s *Server) HandleStats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.Stats())
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Version:   version.APIVersion(),
	})
}
