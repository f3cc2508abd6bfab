package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"toolcrib-backend/internal/domain"
)

func TestAddTool(t *testing.T) {
	ctx := context.Background()

	t.Run("NonAdminDenied", func(t *testing.T) {
		svc := NewToolService(new(MockToolRepo), 0)
		err := svc.AddTool(ctx, standardActor, &domain.Tool{Name: "Jack"})
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})

	t.Run("DefaultsApplied", func(t *testing.T) {
		tools := new(MockToolRepo)
		svc := NewToolService(tools, 0)
		tools.On("Create", mock.Anything, mock.AnythingOfType("*domain.Tool")).Return(nil)

		tool := &domain.Tool{Name: "Floor Jack"}
		err := svc.AddTool(ctx, adminActor, tool)
		assert.NoError(t, err)
		assert.Equal(t, domain.ToolStatusAvailable, tool.Status)
		assert.Equal(t, domain.ToolConditionGood, tool.Condition)
	})

	t.Run("NameRequired", func(t *testing.T) {
		svc := NewToolService(new(MockToolRepo), 0)
		err := svc.AddTool(ctx, adminActor, &domain.Tool{})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("BadStatusRejected", func(t *testing.T) {
		svc := NewToolService(new(MockToolRepo), 0)
		err := svc.AddTool(ctx, adminActor, &domain.Tool{Name: "Jack", Status: "BROKEN"})
		assert.True(t, domain.IsValidation(err))
	})
}

func TestGetTool_NotFound(t *testing.T) {
	tools := new(MockToolRepo)
	svc := NewToolService(tools, 0)
	tools.On("GetByID", mock.Anything, int32(9)).Return(nil, sql.ErrNoRows)

	_, err := svc.GetTool(context.Background(), 9)
	assert.True(t, domain.IsNotFound(err))
}

func TestDeleteTool(t *testing.T) {
	ctx := context.Background()

	t.Run("NonAdminDenied", func(t *testing.T) {
		svc := NewToolService(new(MockToolRepo), 0)
		err := svc.DeleteTool(ctx, standardActor, 1)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})

	t.Run("BlockedByLiveReservation", func(t *testing.T) {
		tools := new(MockToolRepo)
		svc := NewToolService(tools, 0)
		tools.On("Delete", mock.Anything, int32(1)).Return(false, true, nil)

		err := svc.DeleteTool(ctx, adminActor, 1)
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("NotFound", func(t *testing.T) {
		tools := new(MockToolRepo)
		svc := NewToolService(tools, 0)
		tools.On("Delete", mock.Anything, int32(9)).Return(false, false, nil)

		err := svc.DeleteTool(ctx, adminActor, 9)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Success", func(t *testing.T) {
		tools := new(MockToolRepo)
		svc := NewToolService(tools, 0)
		tools.On("Delete", mock.Anything, int32(1)).Return(true, false, nil)

		assert.NoError(t, svc.DeleteTool(ctx, adminActor, 1))
	})
}

func TestUpdateTool_WritesVerbatim(t *testing.T) {
	tools := new(MockToolRepo)
	svc := NewToolService(tools, 0)

	tool := &domain.Tool{ID: 1, Name: "Jack", Status: domain.ToolStatusMaintenance, Condition: domain.ToolConditionBad}
	tools.On("Update", mock.Anything, tool).Return(nil)

	err := svc.UpdateTool(context.Background(), adminActor, tool)
	assert.NoError(t, err)
	tools.AssertExpectations(t)
}
