package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"toolcrib-backend/internal/domain"
	"toolcrib-backend/internal/logger"
	"toolcrib-backend/internal/repository"
)

type reservationService struct {
	reservations repository.ReservationRepository
	tools        repository.ToolRepository
	users        repository.UserRepository
	workers      WorkerService
	emailSvc     EmailService
	timeout      time.Duration
}

func NewReservationService(
	reservations repository.ReservationRepository,
	tools repository.ToolRepository,
	users repository.UserRepository,
	workers WorkerService,
	emailSvc EmailService,
	timeout time.Duration,
) ReservationService {
	return &reservationService{
		reservations: reservations,
		tools:        tools,
		users:        users,
		workers:      workers,
		emailSvc:     emailSvc,
		timeout:      timeout,
	}
}

// validateDates enforces the creation guards: well-formed dates, end strictly
// after start, start not in the past.
func validateDates(startDate, endDate string) error {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return &domain.ValidationError{Field: "start_date", Reason: "must be a date in YYYY-MM-DD form"}
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return &domain.ValidationError{Field: "end_date", Reason: "must be a date in YYYY-MM-DD form"}
	}
	if !end.After(start) {
		return &domain.ValidationError{Field: "end_date", Reason: "must be after start_date"}
	}
	todayStart, _ := time.Parse(dateLayout, today())
	if start.Before(todayStart) {
		return &domain.ValidationError{Field: "start_date", Reason: "must not be in the past"}
	}
	return nil
}

func (s *reservationService) checkToolBookable(ctx context.Context, toolID int32) error {
	tool, err := s.tools.GetByID(ctx, toolID)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.NotFoundError{Entity: "tool", Key: strconv.Itoa(int(toolID))}
	}
	if err != nil {
		return storeErr("GetTool", err)
	}
	if tool.Status != domain.ToolStatusAvailable {
		return &domain.UnavailableError{ToolID: toolID}
	}
	return nil
}

func (s *reservationService) RequestReservation(ctx context.Context, actor domain.Actor, toolID int32, startDate, endDate, notes string) (*domain.Reservation, error) {
	if err := validateDates(startDate, endDate); err != nil {
		return nil, err
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	if err := s.checkToolBookable(ctx, toolID); err != nil {
		return nil, err
	}

	res := &domain.Reservation{
		ToolID:    toolID,
		UserID:    actor.UserID,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    domain.ReservationStatusPending,
		Notes:     notes,
	}
	inserted, err := s.reservations.Create(ctx, res)
	if err != nil {
		return nil, storeErr("CreateReservation", err)
	}
	if !inserted {
		// Another pending or active reservation won the tool in the meantime.
		return nil, &domain.UnavailableError{ToolID: toolID}
	}
	return res, nil
}

func (s *reservationService) AssignReservation(ctx context.Context, actor domain.Actor, scannedToken string, toolID int32, startDate, endDate, notes string) (*domain.Reservation, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}
	if err := validateDates(startDate, endDate); err != nil {
		return nil, err
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	worker, err := s.workers.ResolveWorker(ctx, actor, scannedToken)
	if err != nil {
		return nil, err
	}
	if err := s.checkToolBookable(ctx, toolID); err != nil {
		return nil, err
	}

	res := &domain.Reservation{
		ToolID:    toolID,
		UserID:    worker.ID,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    domain.ReservationStatusActive,
		Notes:     notes,
	}
	claimed, err := s.reservations.CreateActive(ctx, res)
	if err != nil {
		return nil, storeErr("CreateActiveReservation", err)
	}
	if !claimed {
		return nil, &domain.UnavailableError{ToolID: toolID}
	}
	return res, nil
}

func (s *reservationService) ApproveReservation(ctx context.Context, actor domain.Actor, id int32) (*domain.Reservation, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	res, err := s.getReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationStatusPending {
		return nil, &domain.InvalidStateError{Entity: "reservation", ID: id, Status: string(res.Status), Requested: "approve"}
	}

	swapped, err := s.reservations.Transition(ctx, id, domain.ReservationStatusPending, domain.ReservationStatusActive, domain.ActivationEffect())
	if err != nil {
		return nil, storeErr("ApproveReservation", err)
	}
	if !swapped {
		// Lost the race against a concurrent decision on the same request.
		return nil, &domain.InvalidStateError{Entity: "reservation", ID: id, Status: string(res.Status), Requested: "approve"}
	}
	res.Status = domain.ReservationStatusActive

	s.notify(ctx, res, func(email, name, toolName string) error {
		return s.emailSvc.SendReservationApproved(ctx, email, name, toolName)
	})
	return res, nil
}

func (s *reservationService) RejectReservation(ctx context.Context, actor domain.Actor, id int32) (*domain.Reservation, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	res, err := s.getReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationStatusPending {
		return nil, &domain.InvalidStateError{Entity: "reservation", ID: id, Status: string(res.Status), Requested: "reject"}
	}

	swapped, err := s.reservations.Transition(ctx, id, domain.ReservationStatusPending, domain.ReservationStatusCancelled, domain.CancellationEffect())
	if err != nil {
		return nil, storeErr("RejectReservation", err)
	}
	if !swapped {
		return nil, &domain.InvalidStateError{Entity: "reservation", ID: id, Status: string(res.Status), Requested: "reject"}
	}
	res.Status = domain.ReservationStatusCancelled

	s.notify(ctx, res, func(email, name, toolName string) error {
		return s.emailSvc.SendReservationRejected(ctx, email, name, toolName)
	})
	return res, nil
}

func (s *reservationService) CancelReservation(ctx context.Context, actor domain.Actor, id int32) (*domain.Reservation, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	res, err := s.getReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.UserID != actor.UserID {
		return nil, domain.ErrPermissionDenied
	}
	if res.Status != domain.ReservationStatusPending {
		return nil, &domain.InvalidStateError{Entity: "reservation", ID: id, Status: string(res.Status), Requested: "cancel"}
	}

	swapped, err := s.reservations.Transition(ctx, id, domain.ReservationStatusPending, domain.ReservationStatusCancelled, domain.CancellationEffect())
	if err != nil {
		return nil, storeErr("CancelReservation", err)
	}
	if !swapped {
		return nil, &domain.InvalidStateError{Entity: "reservation", ID: id, Status: string(res.Status), Requested: "cancel"}
	}
	res.Status = domain.ReservationStatusCancelled
	return res, nil
}

func (s *reservationService) GetReservation(ctx context.Context, id int32) (*domain.Reservation, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()
	return s.getReservation(ctx, id)
}

func (s *reservationService) ListReservations(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	list, err := s.reservations.List(ctx, status)
	if err != nil {
		return nil, storeErr("ListReservations", err)
	}
	return list, nil
}

func (s *reservationService) getReservation(ctx context.Context, id int32) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "reservation", Key: strconv.Itoa(int(id))}
	}
	if err != nil {
		return nil, storeErr("GetReservation", err)
	}
	return res, nil
}

// notify sends a lifecycle email best effort; a failed notification never
// fails the transition that triggered it.
func (s *reservationService) notify(ctx context.Context, res *domain.Reservation, send func(email, name, toolName string) error) {
	user, _ := s.users.GetByID(ctx, res.UserID)
	tool, _ := s.tools.GetByID(ctx, res.ToolID)
	if user == nil || tool == nil {
		return
	}
	if err := send(user.Email, user.Name, tool.Name); err != nil {
		logger.Warn("Failed to send reservation notification", "reservation_id", res.ID, "error", err)
	}
}
