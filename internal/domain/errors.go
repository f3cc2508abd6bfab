package domain

import (
	"errors"
	"fmt"
)

// ErrPermissionDenied is returned when the acting identity lacks the
// capability for an operation.
var ErrPermissionDenied = errors.New("permission denied")

// ValidationError reports malformed or missing required input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// UnavailableError reports that the target tool is not in a bookable state.
type UnavailableError struct {
	ToolID int32
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("tool %d is not available", e.ToolID)
}

// InvalidStateError reports that the requested transition is not legal from
// the entity's current state, including lost compare-and-swap races.
type InvalidStateError struct {
	Entity    string
	ID        int32
	Status    string
	Requested string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %d: cannot %s from status %s", e.Entity, e.ID, e.Requested, e.Status)
}

// NotFoundError reports an absent entity or an unresolvable identity.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

// ConflictError reports a delete blocked by pending or active references.
type ConflictError struct {
	Entity string
	ID     int32
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Entity, e.ID, e.Reason)
}

// TimeoutError reports that an entity store round trip exceeded the
// configured bound.
type TimeoutError struct {
	Op string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: store round trip timed out", e.Op)
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsUnavailable(err error) bool {
	var e *UnavailableError
	return errors.As(err, &e)
}

func IsInvalidState(err error) bool {
	var e *InvalidStateError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

func IsTimeout(err error) bool {
	var e *TimeoutError
	return errors.As(err, &e)
}
