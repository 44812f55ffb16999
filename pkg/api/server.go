// Package api exposes the record search engine and snapshot store over
// a JSON HTTP API consumed by the hospital front end.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/chartgrep/chartgrep/pkg/log"
	"github.com/chartgrep/chartgrep/pkg/search"
	"github.com/chartgrep/chartgrep/pkg/store"
)

// Server serves search and snapshot endpoints backed by the store.
type Server struct {
	store  *store.Store
	search *search.Service
	logger *log.Logger
}

// NewServer creates an API server over the given store and search
// service.
func NewServer(st *store.Store, svc *search.Service) *Server {
	return &Server{
		store:  st,
		search: svc,
		logger: log.ForService("api"),
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Errorf("encoding JSON response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, error, message string) {
	s.writeJSON(w, status, ErrorResponse{Error: error, Message: message})
}

// CorsMiddleware allows the browser front end to call the API from a
// different origin.
func CorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequestIDMiddleware tags every response with a request ID so front
// end logs can be correlated with server logs.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}
