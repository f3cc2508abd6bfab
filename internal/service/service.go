package service

import (
	"context"
	"errors"
	"time"

	"toolcrib-backend/internal/domain"
)

const dateLayout = "2006-01-02"

type ToolService interface {
	AddTool(ctx context.Context, actor domain.Actor, tool *domain.Tool) error
	GetTool(ctx context.Context, id int32) (*domain.Tool, error)
	ListTools(ctx context.Context) ([]domain.Tool, error)
	UpdateTool(ctx context.Context, actor domain.Actor, tool *domain.Tool) error
	DeleteTool(ctx context.Context, actor domain.Actor, id int32) error
}

type ReservationService interface {
	// RequestReservation is the self-service path: the reservation starts
	// PENDING and waits for an admin decision.
	RequestReservation(ctx context.Context, actor domain.Actor, toolID int32, startDate, endDate, notes string) (*domain.Reservation, error)
	// AssignReservation is the admin worker-assisted path: the worker identity
	// comes from a scanned badge token and the reservation starts ACTIVE,
	// skipping approval.
	AssignReservation(ctx context.Context, actor domain.Actor, scannedToken string, toolID int32, startDate, endDate, notes string) (*domain.Reservation, error)
	ApproveReservation(ctx context.Context, actor domain.Actor, id int32) (*domain.Reservation, error)
	RejectReservation(ctx context.Context, actor domain.Actor, id int32) (*domain.Reservation, error)
	// CancelReservation is the owning user's self-cancel of a PENDING request.
	CancelReservation(ctx context.Context, actor domain.Actor, id int32) (*domain.Reservation, error)
	GetReservation(ctx context.Context, id int32) (*domain.Reservation, error)
	ListReservations(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error)
}

type RatingService interface {
	// CloseOutReservation records the return rating, puts the tool back on the
	// shelf and completes the reservation, atomically.
	CloseOutReservation(ctx context.Context, actor domain.Actor, reservationID int32, condition domain.ToolCondition, userRating int32, comments string) (*domain.Rating, error)
	ListRatings(ctx context.Context) ([]domain.Rating, error)
}

type WorkerService interface {
	// ResolveWorker maps a scanned badge token to a worker, trying internal
	// id, identification number, then email.
	ResolveWorker(ctx context.Context, actor domain.Actor, scannedToken string) (*domain.User, error)
	// WorkerBadge renders the QR badge image for a worker.
	WorkerBadge(ctx context.Context, workerID int32) ([]byte, error)
}

type ReportService interface {
	ToolUsage(ctx context.Context, startDate, endDate string) ([]domain.ToolUsage, error)
	UserUsage(ctx context.Context, startDate, endDate string) ([]domain.UserUsage, error)
	TopTools(ctx context.Context) ([]domain.ToolRequestCount, error)
	TopUsers(ctx context.Context) ([]domain.UserRequestCount, error)
}

type AlertService interface {
	ListAlerts(ctx context.Context, priority domain.AlertPriority) ([]domain.Alert, error)
	CreateAlert(ctx context.Context, actor domain.Actor, alert *domain.Alert) error
}

type AuthService interface {
	// Login verifies credentials and returns a signed access token plus the
	// authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type EmailService interface {
	SendReservationApproved(ctx context.Context, email, name, toolName string) error
	SendReservationRejected(ctx context.Context, email, name, toolName string) error
	SendReservationCompleted(ctx context.Context, email, name, toolName string) error
}

// opContext bounds an entity store round trip per spec'd timeout policy.
func opContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// storeErr maps a deadline hit on a store round trip onto the typed timeout
// error; anything else passes through.
func storeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &domain.TimeoutError{Op: op}
	}
	return err
}

func today() string {
	return time.Now().Format(dateLayout)
}
