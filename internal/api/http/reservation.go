package http

import (
	"net/http"

	"toolcrib-backend/internal/domain"
)

type reservationRequest struct {
	ToolID    int32  `json:"tool_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Notes     string `json:"notes"`
}

type assistedReservationRequest struct {
	reservationRequest
	ScannedToken string `json:"scanned_token"`
}

func (s *Server) handleListReservations(w http.ResponseWriter, r *http.Request) {
	status := domain.ReservationStatus(r.URL.Query().Get("status"))
	reservations, err := s.reservations.ListReservations(r.Context(), status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reservations)
}

func (s *Server) handleGetReservation(w http.ResponseWriter, r *http.Request) {
	res, err := s.reservations.GetReservation(r.Context(), pathID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (s *Server) handleRequestReservation(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res, err := s.reservations.RequestReservation(r.Context(), actorFromContext(r.Context()),
		req.ToolID, req.StartDate, req.EndDate, req.Notes)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

func (s *Server) handleAssignReservation(w http.ResponseWriter, r *http.Request) {
	var req assistedReservationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res, err := s.reservations.AssignReservation(r.Context(), actorFromContext(r.Context()),
		req.ScannedToken, req.ToolID, req.StartDate, req.EndDate, req.Notes)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

func (s *Server) handleApproveReservation(w http.ResponseWriter, r *http.Request) {
	res, err := s.reservations.ApproveReservation(r.Context(), actorFromContext(r.Context()), pathID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (s *Server) handleRejectReservation(w http.ResponseWriter, r *http.Request) {
	res, err := s.reservations.RejectReservation(r.Context(), actorFromContext(r.Context()), pathID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (s *Server) handleCancelReservation(w http.ResponseWriter, r *http.Request) {
	res, err := s.reservations.CancelReservation(r.Context(), actorFromContext(r.Context()), pathID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}
