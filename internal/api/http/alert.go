package http

import (
	"net/http"

	"toolcrib-backend/internal/domain"
)

func (s *Server) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	priority := domain.AlertPriority(r.URL.Query().Get("priority"))
	alerts, err := s.alerts.ListAlerts(r.Context(), priority)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, alerts)
}

func (s *Server) handleCreateAlert(w http.ResponseWriter, r *http.Request) {
	var alert domain.Alert
	if !decodeBody(w, r, &alert) {
		return
	}
	if err := s.alerts.CreateAlert(r.Context(), actorFromContext(r.Context()), &alert); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, alert)
}
