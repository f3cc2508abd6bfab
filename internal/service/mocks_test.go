package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"toolcrib-backend/internal/domain"
)

// MockToolRepo
type MockToolRepo struct {
	mock.Mock
}

func (m *MockToolRepo) Create(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolRepo) GetByID(ctx context.Context, id int32) (*domain.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolRepo) List(ctx context.Context) ([]domain.Tool, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolRepo) Update(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolRepo) ApplyEffect(ctx context.Context, id int32, effect domain.ToolEffect, expect *domain.ToolStatus) (bool, error) {
	args := m.Called(ctx, id, effect, expect)
	return args.Bool(0), args.Error(1)
}
func (m *MockToolRepo) Delete(ctx context.Context, id int32) (bool, bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Bool(1), args.Error(2)
}
func (m *MockToolRepo) ListByCondition(ctx context.Context, condition domain.ToolCondition) ([]domain.Tool, error) {
	args := m.Called(ctx, condition)
	return args.Get(0).([]domain.Tool), args.Error(1)
}

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, res *domain.Reservation) (bool, error) {
	args := m.Called(ctx, res)
	return args.Bool(0), args.Error(1)
}
func (m *MockReservationRepo) CreateActive(ctx context.Context, res *domain.Reservation) (bool, error) {
	args := m.Called(ctx, res)
	return args.Bool(0), args.Error(1)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) List(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) Transition(ctx context.Context, id int32, from, to domain.ReservationStatus, effect domain.ToolEffect) (bool, error) {
	args := m.Called(ctx, id, from, to, effect)
	return args.Bool(0), args.Error(1)
}
func (m *MockReservationRepo) ListBetween(ctx context.Context, startDate, endDate string, statuses []domain.ReservationStatus) ([]domain.Reservation, error) {
	args := m.Called(ctx, startDate, endDate, statuses)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListOverdue(ctx context.Context, asOf string) ([]domain.Reservation, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

// MockRatingRepo
type MockRatingRepo struct {
	mock.Mock
}

func (m *MockRatingRepo) List(ctx context.Context) ([]domain.Rating, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rating), args.Error(1)
}
func (m *MockRatingRepo) Closeout(ctx context.Context, rating *domain.Rating, effect domain.ToolEffect) (bool, error) {
	args := m.Called(ctx, rating, effect)
	return args.Bool(0), args.Error(1)
}

// MockAlertRepo
type MockAlertRepo struct {
	mock.Mock
}

func (m *MockAlertRepo) Create(ctx context.Context, alert *domain.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}
func (m *MockAlertRepo) List(ctx context.Context, priority domain.AlertPriority) ([]domain.Alert, error) {
	args := m.Called(ctx, priority)
	return args.Get(0).([]domain.Alert), args.Error(1)
}
func (m *MockAlertRepo) ExistsForTool(ctx context.Context, toolID int32, description string) (bool, error) {
	args := m.Called(ctx, toolID, description)
	return args.Bool(0), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByIdentification(ctx context.Context, identification string) (*domain.User, error) {
	args := m.Called(ctx, identification)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendReservationApproved(ctx context.Context, email, name, toolName string) error {
	args := m.Called(ctx, email, name, toolName)
	return args.Error(0)
}
func (m *MockEmailService) SendReservationRejected(ctx context.Context, email, name, toolName string) error {
	args := m.Called(ctx, email, name, toolName)
	return args.Error(0)
}
func (m *MockEmailService) SendReservationCompleted(ctx context.Context, email, name, toolName string) error {
	args := m.Called(ctx, email, name, toolName)
	return args.Error(0)
}
