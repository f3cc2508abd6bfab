package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusActive    ReservationStatus = "ACTIVE"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// Terminal reports whether no further transition is permitted out of s.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationStatusCompleted || s == ReservationStatusCancelled
}

type Reservation struct {
	ID        int32             `json:"id"`
	ToolID    int32             `json:"tool_id"`
	UserID    int32             `json:"user_id"`
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Status    ReservationStatus `json:"status"`
	Notes     string            `json:"notes"`
	CreatedOn time.Time         `json:"created_on"`
}
