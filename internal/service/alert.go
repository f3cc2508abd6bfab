package service

import (
	"context"
	"time"

	"toolcrib-backend/internal/domain"
	"toolcrib-backend/internal/repository"
)

type alertService struct {
	alerts  repository.AlertRepository
	timeout time.Duration
}

func NewAlertService(alerts repository.AlertRepository, timeout time.Duration) AlertService {
	return &alertService{alerts: alerts, timeout: timeout}
}

func (s *alertService) ListAlerts(ctx context.Context, priority domain.AlertPriority) ([]domain.Alert, error) {
	if priority != "" && !priority.Valid() {
		return nil, &domain.ValidationError{Field: "priority", Reason: "must be LOW, MEDIUM, HIGH or CRITICAL"}
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	alerts, err := s.alerts.List(ctx, priority)
	if err != nil {
		return nil, storeErr("ListAlerts", err)
	}
	return alerts, nil
}

func (s *alertService) CreateAlert(ctx context.Context, actor domain.Actor, alert *domain.Alert) error {
	if !actor.IsAdmin() {
		return domain.ErrPermissionDenied
	}
	if alert.Description == "" {
		return &domain.ValidationError{Field: "description", Reason: "is required"}
	}
	if !alert.Priority.Valid() {
		return &domain.ValidationError{Field: "priority", Reason: "must be LOW, MEDIUM, HIGH or CRITICAL"}
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	if err := s.alerts.Create(ctx, alert); err != nil {
		return storeErr("CreateAlert", err)
	}
	return nil
}
