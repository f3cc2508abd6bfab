package http

import "net/http"

type resolveWorkerRequest struct {
	ScannedToken string `json:"scanned_token"`
}

func (s *Server) handleResolveWorker(w http.ResponseWriter, r *http.Request) {
	var req resolveWorkerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	user, err := s.workers.ResolveWorker(r.Context(), actorFromContext(r.Context()), req.ScannedToken)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (s *Server) handleWorkerBadge(w http.ResponseWriter, r *http.Request) {
	badge, err := s.workers.WorkerBadge(r.Context(), pathID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(badge)
}
