package http

import "net/http"

func (s *Server) handleToolUsage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	report, err := s.reports.ToolUsage(r.Context(), q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleUserUsage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	report, err := s.reports.UserUsage(r.Context(), q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleTopTools(w http.ResponseWriter, r *http.Request) {
	report, err := s.reports.TopTools(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleTopUsers(w http.ResponseWriter, r *http.Request) {
	report, err := s.reports.TopUsers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
