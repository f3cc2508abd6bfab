package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"toolcrib-backend/internal/security"
	"toolcrib-backend/internal/service"
)

// Server bundles the HTTP handlers for the tool crib API.
type Server struct {
	tools        service.ToolService
	reservations service.ReservationService
	ratings      service.RatingService
	workers      service.WorkerService
	reports      service.ReportService
	alerts       service.AlertService
	auth         service.AuthService
	tokens       security.TokenManager
}

func NewServer(
	tools service.ToolService,
	reservations service.ReservationService,
	ratings service.RatingService,
	workers service.WorkerService,
	reports service.ReportService,
	alerts service.AlertService,
	auth service.AuthService,
	tokens security.TokenManager,
) *Server {
	return &Server{
		tools:        tools,
		reservations: reservations,
		ratings:      ratings,
		workers:      workers,
		reports:      reports,
		alerts:       alerts,
		auth:         auth,
		tokens:       tokens,
	}
}

// Router wires all routes with their middleware.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)

	r.HandleFunc("/api/login", s.handleLogin).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.authMiddleware)

	api.HandleFunc("/tools", s.handleListTools).Methods(http.MethodGet)
	api.HandleFunc("/tools", s.handleAddTool).Methods(http.MethodPost)
	api.HandleFunc("/tools/{id:[0-9]+}", s.handleGetTool).Methods(http.MethodGet)
	api.HandleFunc("/tools/{id:[0-9]+}", s.handleUpdateTool).Methods(http.MethodPut)
	api.HandleFunc("/tools/{id:[0-9]+}", s.handleDeleteTool).Methods(http.MethodDelete)

	api.HandleFunc("/reservations", s.handleListReservations).Methods(http.MethodGet)
	api.HandleFunc("/reservations", s.handleRequestReservation).Methods(http.MethodPost)
	api.HandleFunc("/reservations/assisted", s.handleAssignReservation).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id:[0-9]+}", s.handleGetReservation).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id:[0-9]+}/approve", s.handleApproveReservation).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id:[0-9]+}/reject", s.handleRejectReservation).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id:[0-9]+}/cancel", s.handleCancelReservation).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id:[0-9]+}/closeout", s.handleCloseOutReservation).Methods(http.MethodPost)

	api.HandleFunc("/ratings", s.handleListRatings).Methods(http.MethodGet)

	api.HandleFunc("/alerts", s.handleListAlerts).Methods(http.MethodGet)
	api.HandleFunc("/alerts", s.handleCreateAlert).Methods(http.MethodPost)

	api.HandleFunc("/reports/tool-usage", s.handleToolUsage).Methods(http.MethodGet)
	api.HandleFunc("/reports/user-usage", s.handleUserUsage).Methods(http.MethodGet)
	api.HandleFunc("/reports/top-tools", s.handleTopTools).Methods(http.MethodGet)
	api.HandleFunc("/reports/top-users", s.handleTopUsers).Methods(http.MethodGet)

	api.HandleFunc("/workers/resolve", s.handleResolveWorker).Methods(http.MethodPost)
	api.HandleFunc("/workers/{id:[0-9]+}/badge.png", s.handleWorkerBadge).Methods(http.MethodGet)

	return r
}
