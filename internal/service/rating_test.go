package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"toolcrib-backend/internal/domain"
)

func newRatingFixture() (*MockRatingRepo, *MockReservationRepo, *MockToolRepo, *MockUserRepo, *MockEmailService, RatingService) {
	ratings := new(MockRatingRepo)
	reservations := new(MockReservationRepo)
	tools := new(MockToolRepo)
	users := new(MockUserRepo)
	email := new(MockEmailService)
	svc := NewRatingService(ratings, reservations, tools, users, email, 0)
	return ratings, reservations, tools, users, email, svc
}

func TestCloseOutReservation(t *testing.T) {
	ctx := context.Background()
	active := &domain.Reservation{ID: 5, ToolID: 1, UserID: 7, Status: domain.ReservationStatusActive}

	t.Run("NonAdminDenied", func(t *testing.T) {
		_, _, _, _, _, svc := newRatingFixture()
		_, err := svc.CloseOutReservation(ctx, standardActor, 5, domain.ToolConditionGood, 4, "")
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})

	t.Run("InvalidCondition", func(t *testing.T) {
		_, _, _, _, _, svc := newRatingFixture()
		_, err := svc.CloseOutReservation(ctx, adminActor, 5, "RUSTY", 4, "")
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		_, _, _, _, _, svc := newRatingFixture()
		_, err := svc.CloseOutReservation(ctx, adminActor, 5, domain.ToolConditionGood, 6, "")
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("ReservationNotFound", func(t *testing.T) {
		_, reservations, _, _, _, svc := newRatingFixture()
		reservations.On("GetByID", mock.Anything, int32(5)).Return(nil, sql.ErrNoRows)

		_, err := svc.CloseOutReservation(ctx, adminActor, 5, domain.ToolConditionGood, 4, "")
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("NotActive", func(t *testing.T) {
		_, reservations, _, _, _, svc := newRatingFixture()
		pending := *active
		pending.Status = domain.ReservationStatusPending
		reservations.On("GetByID", mock.Anything, int32(5)).Return(&pending, nil)

		_, err := svc.CloseOutReservation(ctx, adminActor, 5, domain.ToolConditionGood, 4, "")
		assert.True(t, domain.IsInvalidState(err))
	})

	t.Run("Success", func(t *testing.T) {
		ratings, reservations, tools, users, email, svc := newRatingFixture()
		res := *active
		reservations.On("GetByID", mock.Anything, int32(5)).Return(&res, nil)
		ratings.On("Closeout", mock.Anything, mock.AnythingOfType("*domain.Rating"), mock.AnythingOfType("domain.ToolEffect")).Return(true, nil)
		users.On("GetByID", mock.Anything, int32(7)).Return(&domain.User{ID: 7, Name: "Luis", Email: "luis@shop.test"}, nil)
		tools.On("GetByID", mock.Anything, int32(1)).Return(availableTool(1), nil)
		email.On("SendReservationCompleted", mock.Anything, "luis@shop.test", "Luis", "Torque Wrench").Return(nil)

		rating, err := svc.CloseOutReservation(ctx, adminActor, 5, domain.ToolConditionDeteriorated, 4, "worn jaws")
		assert.NoError(t, err)
		assert.Equal(t, int32(5), rating.ReservationID)
		assert.Equal(t, int32(1), rating.ToolID)
		assert.Equal(t, int32(7), rating.UserID)
		assert.Equal(t, adminActor.UserID, rating.RatedBy)
		assert.Equal(t, domain.ToolConditionDeteriorated, rating.ToolCondition)
	})

	t.Run("BadConditionSchedulesMaintenance", func(t *testing.T) {
		ratings, reservations, tools, users, email, svc := newRatingFixture()
		res := *active
		reservations.On("GetByID", mock.Anything, int32(5)).Return(&res, nil)

		var effect domain.ToolEffect
		ratings.On("Closeout", mock.Anything, mock.AnythingOfType("*domain.Rating"), mock.AnythingOfType("domain.ToolEffect")).
			Run(func(args mock.Arguments) { effect = args.Get(2).(domain.ToolEffect) }).
			Return(true, nil)
		users.On("GetByID", mock.Anything, int32(7)).Return(&domain.User{ID: 7, Name: "Luis", Email: "luis@shop.test"}, nil)
		tools.On("GetByID", mock.Anything, int32(1)).Return(availableTool(1), nil)
		email.On("SendReservationCompleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		_, err := svc.CloseOutReservation(ctx, adminActor, 5, domain.ToolConditionBad, 2, "dropped")
		assert.NoError(t, err)
		assert.NotNil(t, effect.Status)
		assert.Equal(t, domain.ToolStatusAvailable, *effect.Status)
		assert.NotNil(t, effect.Condition)
		assert.Equal(t, domain.ToolConditionBad, *effect.Condition)
		assert.NotNil(t, effect.LastMaintenanceDate)
	})

	t.Run("LostRace", func(t *testing.T) {
		ratings, reservations, _, _, _, svc := newRatingFixture()
		res := *active
		reservations.On("GetByID", mock.Anything, int32(5)).Return(&res, nil)
		ratings.On("Closeout", mock.Anything, mock.AnythingOfType("*domain.Rating"), mock.AnythingOfType("domain.ToolEffect")).Return(false, nil)

		_, err := svc.CloseOutReservation(ctx, adminActor, 5, domain.ToolConditionGood, 4, "")
		assert.True(t, domain.IsInvalidState(err))
	})
}

func TestListRatings(t *testing.T) {
	ratings, _, _, _, _, svc := newRatingFixture()
	ratings.On("List", mock.Anything).Return([]domain.Rating{{ID: 1}, {ID: 2}}, nil)

	got, err := svc.ListRatings(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}
