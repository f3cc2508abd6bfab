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

type ratingService struct {
	ratings      repository.RatingRepository
	reservations repository.ReservationRepository
	tools        repository.ToolRepository
	users        repository.UserRepository
	emailSvc     EmailService
	timeout      time.Duration
}

func NewRatingService(
	ratings repository.RatingRepository,
	reservations repository.ReservationRepository,
	tools repository.ToolRepository,
	users repository.UserRepository,
	emailSvc EmailService,
	timeout time.Duration,
) RatingService {
	return &ratingService{
		ratings:      ratings,
		reservations: reservations,
		tools:        tools,
		users:        users,
		emailSvc:     emailSvc,
		timeout:      timeout,
	}
}

func (s *ratingService) CloseOutReservation(ctx context.Context, actor domain.Actor, reservationID int32, condition domain.ToolCondition, userRating int32, comments string) (*domain.Rating, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}
	if !condition.Valid() {
		return nil, &domain.ValidationError{Field: "tool_condition", Reason: "must be GOOD, DETERIORATED or BAD"}
	}
	if userRating < 1 || userRating > 5 {
		return nil, &domain.ValidationError{Field: "user_rating", Reason: "must be between 1 and 5"}
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	res, err := s.reservations.GetByID(ctx, reservationID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "reservation", Key: strconv.Itoa(int(reservationID))}
	}
	if err != nil {
		return nil, storeErr("GetReservation", err)
	}
	if res.Status != domain.ReservationStatusActive {
		return nil, &domain.InvalidStateError{Entity: "reservation", ID: reservationID, Status: string(res.Status), Requested: "close out"}
	}

	rating := &domain.Rating{
		ReservationID: res.ID,
		ToolID:        res.ToolID,
		UserID:        res.UserID,
		ToolCondition: condition,
		UserRating:    userRating,
		Comments:      comments,
		RatedBy:       actor.UserID,
	}
	swapped, err := s.ratings.Closeout(ctx, rating, domain.CompletionEffect(condition, today()))
	if err != nil {
		return nil, storeErr("CloseOutReservation", err)
	}
	if !swapped {
		return nil, &domain.InvalidStateError{Entity: "reservation", ID: reservationID, Status: string(res.Status), Requested: "close out"}
	}

	user, _ := s.users.GetByID(ctx, res.UserID)
	tool, _ := s.tools.GetByID(ctx, res.ToolID)
	if user != nil && tool != nil {
		if err := s.emailSvc.SendReservationCompleted(ctx, user.Email, user.Name, tool.Name); err != nil {
			logger.Warn("Failed to send completion notification", "reservation_id", res.ID, "error", err)
		}
	}
	return rating, nil
}

func (s *ratingService) ListRatings(ctx context.Context) ([]domain.Rating, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	ratings, err := s.ratings.List(ctx)
	if err != nil {
		return nil, storeErr("ListRatings", err)
	}
	return ratings, nil
}
