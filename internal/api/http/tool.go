package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"toolcrib-backend/internal/domain"
)

func pathID(r *http.Request) int32 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	return int32(id)
}

func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	tools, err := s.tools.ListTools(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tools)
}

func (s *Server) handleGetTool(w http.ResponseWriter, r *http.Request) {
	tool, err := s.tools.GetTool(r.Context(), pathID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tool)
}

func (s *Server) handleAddTool(w http.ResponseWriter, r *http.Request) {
	var tool domain.Tool
	if !decodeBody(w, r, &tool) {
		return
	}
	if err := s.tools.AddTool(r.Context(), actorFromContext(r.Context()), &tool); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, tool)
}

func (s *Server) handleUpdateTool(w http.ResponseWriter, r *http.Request) {
	var tool domain.Tool
	if !decodeBody(w, r, &tool) {
		return
	}
	tool.ID = pathID(r)
	if err := s.tools.UpdateTool(r.Context(), actorFromContext(r.Context()), &tool); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tool)
}

func (s *Server) handleDeleteTool(w http.ResponseWriter, r *http.Request) {
	if err := s.tools.DeleteTool(r.Context(), actorFromContext(r.Context()), pathID(r)); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
