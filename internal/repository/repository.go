package repository

import (
	"context"

	"toolcrib-backend/internal/domain"
)

type ToolRepository interface {
	Create(ctx context.Context, tool *domain.Tool) error
	GetByID(ctx context.Context, id int32) (*domain.Tool, error)
	List(ctx context.Context) ([]domain.Tool, error)
	// Update writes an admin edit verbatim, bypassing the availability policy.
	Update(ctx context.Context, tool *domain.Tool) error
	// ApplyEffect patches the policy-owned fields. When expect is non-nil the
	// patch only lands if the tool currently has that status; applied reports
	// whether a row matched.
	ApplyEffect(ctx context.Context, id int32, effect domain.ToolEffect, expect *domain.ToolStatus) (applied bool, err error)
	// Delete removes the tool unless a PENDING or ACTIVE reservation still
	// references it.
	Delete(ctx context.Context, id int32) (deleted bool, blocked bool, err error)
	ListByCondition(ctx context.Context, condition domain.ToolCondition) ([]domain.Tool, error)
}

type ReservationRepository interface {
	// Create inserts a PENDING reservation. The insert carries a guard against
	// double booking: it does not land if another PENDING or ACTIVE
	// reservation already references the tool.
	Create(ctx context.Context, res *domain.Reservation) (inserted bool, err error)
	// CreateActive inserts a reservation directly in ACTIVE (admin
	// worker-assisted flow) and flips its tool AVAILABLE -> UNAVAILABLE in the
	// same transaction; claimed is false when the tool could not be claimed.
	CreateActive(ctx context.Context, res *domain.Reservation) (claimed bool, err error)
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	// List returns reservations, optionally filtered by status ("" for all),
	// newest first.
	List(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error)
	// Transition performs the compare-and-swap from -> to and, when the swap
	// lands, applies the tool effect to the reservation's tool inside the same
	// transaction.
	Transition(ctx context.Context, id int32, from, to domain.ReservationStatus, effect domain.ToolEffect) (swapped bool, err error)
	// ListBetween returns reservations in the given statuses whose date range
	// intersects [startDate, endDate]; empty bounds are open.
	ListBetween(ctx context.Context, startDate, endDate string, statuses []domain.ReservationStatus) ([]domain.Reservation, error)
	// ListOverdue returns ACTIVE reservations whose end date is before asOf.
	ListOverdue(ctx context.Context, asOf string) ([]domain.Reservation, error)
}

type RatingRepository interface {
	List(ctx context.Context) ([]domain.Rating, error)
	// Closeout atomically records the rating, applies the tool effect and
	// completes the reservation. The reservation transition is a
	// compare-and-swap on ACTIVE; when it loses the race nothing is applied
	// and swapped is false.
	Closeout(ctx context.Context, rating *domain.Rating, effect domain.ToolEffect) (swapped bool, err error)
}

type AlertRepository interface {
	Create(ctx context.Context, alert *domain.Alert) error
	// List returns alerts, optionally filtered by priority ("" for all),
	// newest first.
	List(ctx context.Context, priority domain.AlertPriority) ([]domain.Alert, error)
	// ExistsForTool reports whether the tool already carries an alert with the
	// given description, so monitoring jobs do not pile up duplicates.
	ExistsForTool(ctx context.Context, toolID int32, description string) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByIdentification(ctx context.Context, identification string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
