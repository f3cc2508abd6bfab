package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/yeqown/go-qrcode"

	"toolcrib-backend/internal/domain"
	"toolcrib-backend/internal/repository"
)

type workerService struct {
	users   repository.UserRepository
	timeout time.Duration
}

func NewWorkerService(users repository.UserRepository, timeout time.Duration) WorkerService {
	return &workerService{users: users, timeout: timeout}
}

// ResolveWorker maps a scanned badge token to a worker. The badge may carry
// the internal id, the identification number or the email, tried in that
// order.
func (s *workerService) ResolveWorker(ctx context.Context, actor domain.Actor, scannedToken string) (*domain.User, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}
	if scannedToken == "" {
		return nil, &domain.ValidationError{Field: "token", Reason: "is required"}
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	if id, err := strconv.ParseInt(scannedToken, 10, 32); err == nil {
		user, err := s.users.GetByID(ctx, int32(id))
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, storeErr("ResolveWorker", err)
		}
	}

	user, err := s.users.GetByIdentification(ctx, scannedToken)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, storeErr("ResolveWorker", err)
	}

	user, err = s.users.GetByEmail(ctx, scannedToken)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, storeErr("ResolveWorker", err)
	}
	return nil, &domain.NotFoundError{Entity: "worker", Key: scannedToken}
}

// WorkerBadge renders the QR image scanned at the counter. The code carries
// the identification number when the worker has one, else the internal id.
func (s *workerService) WorkerBadge(ctx context.Context, workerID int32) ([]byte, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	user, err := s.users.GetByID(ctx, workerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "worker", Key: strconv.Itoa(int(workerID))}
	}
	if err != nil {
		return nil, storeErr("WorkerBadge", err)
	}

	content := user.Identification
	if content == "" {
		content = strconv.Itoa(int(user.ID))
	}
	qrc, err := qrcode.New(content, qrcode.WithBuiltinImageEncoder(qrcode.PNG_FORMAT))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := qrc.SaveTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
