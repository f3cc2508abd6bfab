package http

import (
	"net/http"

	"toolcrib-backend/internal/domain"
)

type closeoutRequest struct {
	ToolCondition domain.ToolCondition `json:"tool_condition"`
	UserRating    int32                `json:"user_rating"`
	Comments      string               `json:"comments"`
}

func (s *Server) handleCloseOutReservation(w http.ResponseWriter, r *http.Request) {
	var req closeoutRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rating, err := s.ratings.CloseOutReservation(r.Context(), actorFromContext(r.Context()),
		pathID(r), req.ToolCondition, req.UserRating, req.Comments)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rating)
}

func (s *Server) handleListRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := s.ratings.ListRatings(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ratings)
}
