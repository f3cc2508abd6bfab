package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"toolcrib-backend/internal/domain"
	"toolcrib-backend/internal/service"
)

func TestRespondError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"Validation", &domain.ValidationError{Field: "start_date", Reason: "bad"}, http.StatusBadRequest},
		{"PermissionDenied", domain.ErrPermissionDenied, http.StatusForbidden},
		{"InvalidCredentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"NotFound", &domain.NotFoundError{Entity: "tool", Key: "9"}, http.StatusNotFound},
		{"Unavailable", &domain.UnavailableError{ToolID: 1}, http.StatusConflict},
		{"InvalidState", &domain.InvalidStateError{Entity: "reservation", ID: 5, Status: "COMPLETED", Requested: "approve"}, http.StatusConflict},
		{"Conflict", &domain.ConflictError{Entity: "tool", ID: 1, Reason: "live reservations"}, http.StatusConflict},
		{"Timeout", &domain.TimeoutError{Op: "ListTools"}, http.StatusGatewayTimeout},
		{"Unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, tc.err)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestRespondError_HidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, assert.AnError)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	assert.Contains(t, rec.Body.String(), "internal error")
}
