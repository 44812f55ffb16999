package api

import (
	"net/http"
)

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/search", s.HandleSearch)
	mux.HandleFunc("GET /api/records", s.HandleListRecords)
	mux.HandleFunc("GET /api/records/{id}", s.HandleGetRecord)
	mux.HandleFunc("GET /api/doctors", s.HandleDoctors)
	mux.HandleFunc("GET /api/departments", s.HandleDepartments)
	mux.HandleFunc("GET /api/stats", s.HandleStats)
	mux.HandleFunc("GET /health", s.HandleHealth)
}
