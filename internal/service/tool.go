package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"toolcrib-backend/internal/domain"
	"toolcrib-backend/internal/repository"
)

type toolService struct {
	tools   repository.ToolRepository
	timeout time.Duration
}

func NewToolService(tools repository.ToolRepository, timeout time.Duration) ToolService {
	return &toolService{tools: tools, timeout: timeout}
}

func validateTool(t *domain.Tool) error {
	if t.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	if !t.Status.Valid() {
		return &domain.ValidationError{Field: "status", Reason: "must be AVAILABLE, UNAVAILABLE or MAINTENANCE"}
	}
	if !t.Condition.Valid() {
		return &domain.ValidationError{Field: "condition", Reason: "must be GOOD, DETERIORATED or BAD"}
	}
	return nil
}

func (s *toolService) AddTool(ctx context.Context, actor domain.Actor, t *domain.Tool) error {
	if !actor.IsAdmin() {
		return domain.ErrPermissionDenied
	}
	if t.Status == "" {
		t.Status = domain.ToolStatusAvailable
	}
	if t.Condition == "" {
		t.Condition = domain.ToolConditionGood
	}
	if err := validateTool(t); err != nil {
		return err
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	if err := s.tools.Create(ctx, t); err != nil {
		return storeErr("AddTool", err)
	}
	return nil
}

func (s *toolService) GetTool(ctx context.Context, id int32) (*domain.Tool, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	t, err := s.tools.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "tool", Key: strconv.Itoa(int(id))}
	}
	if err != nil {
		return nil, storeErr("GetTool", err)
	}
	return t, nil
}

func (s *toolService) ListTools(ctx context.Context) ([]domain.Tool, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	tools, err := s.tools.List(ctx)
	if err != nil {
		return nil, storeErr("ListTools", err)
	}
	return tools, nil
}

// UpdateTool writes an admin edit verbatim. Status and condition set here
// bypass the availability policy on purpose; only the delete guard protects
// tools with live reservations.
func (s *toolService) UpdateTool(ctx context.Context, actor domain.Actor, t *domain.Tool) error {
	if !actor.IsAdmin() {
		return domain.ErrPermissionDenied
	}
	if err := validateTool(t); err != nil {
		return err
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	err := s.tools.Update(ctx, t)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.NotFoundError{Entity: "tool", Key: strconv.Itoa(int(t.ID))}
	}
	if err != nil {
		return storeErr("UpdateTool", err)
	}
	return nil
}

func (s *toolService) DeleteTool(ctx context.Context, actor domain.Actor, id int32) error {
	if !actor.IsAdmin() {
		return domain.ErrPermissionDenied
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	deleted, blocked, err := s.tools.Delete(ctx, id)
	if err != nil {
		return storeErr("DeleteTool", err)
	}
	if blocked {
		return &domain.ConflictError{Entity: "tool", ID: id, Reason: "has pending or active reservations"}
	}
	if !deleted {
		return &domain.NotFoundError{Entity: "tool", Key: strconv.Itoa(int(id))}
	}
	return nil
}
