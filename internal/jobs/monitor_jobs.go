package jobs

import (
	"context"
	"fmt"
	"time"

	"toolcrib-backend/internal/domain"
	"toolcrib-backend/internal/logger"
)

// CheckOverdueReservations raises a HIGH alert for every ACTIVE reservation
// whose end date has passed without a closeout.
func (jr *JobRunner) CheckOverdueReservations() {
	jr.runWithRecovery("CheckOverdueReservations", func() {
		ctx := context.Background()
		asOf := time.Now().Format("2006-01-02")

		overdue, err := jr.store.ListOverdue(ctx, asOf)
		if err != nil {
			logger.Error("Failed to list overdue reservations", "error", err)
			return
		}

		count := 0
		for _, res := range overdue {
			description := fmt.Sprintf("reservation %d overdue since %s", res.ID, res.EndDate)
			exists, err := jr.store.ExistsForTool(ctx, res.ToolID, description)
			if err != nil {
				logger.Error("Failed to check existing alert", "tool_id", res.ToolID, "error", err)
				continue
			}
			if exists {
				continue
			}
			alert := &domain.Alert{
				ToolID:      res.ToolID,
				Description: description,
				Priority:    domain.AlertPriorityHigh,
			}
			if err := jr.store.AlertRepository.Create(ctx, alert); err != nil {
				logger.Error("Failed to create overdue alert", "tool_id", res.ToolID, "error", err)
				continue
			}
			count++
			logger.Debug("Raised overdue alert",
				"reservation_id", res.ID,
				"tool_id", res.ToolID,
				"end_date", res.EndDate)
		}

		logger.Info("Raised overdue reservation alerts", "count", count)
	})
}

// CheckToolCondition raises a MEDIUM alert for every tool sitting in BAD
// condition, flagging it for maintenance.
func (jr *JobRunner) CheckToolCondition() {
	jr.runWithRecovery("CheckToolCondition", func() {
		ctx := context.Background()

		tools, err := jr.store.ListByCondition(ctx, domain.ToolConditionBad)
		if err != nil {
			logger.Error("Failed to list tools by condition", "error", err)
			return
		}

		count := 0
		for _, tool := range tools {
			description := fmt.Sprintf("tool %q returned in bad condition, needs maintenance", tool.Name)
			exists, err := jr.store.ExistsForTool(ctx, tool.ID, description)
			if err != nil {
				logger.Error("Failed to check existing alert", "tool_id", tool.ID, "error", err)
				continue
			}
			if exists {
				continue
			}
			alert := &domain.Alert{
				ToolID:      tool.ID,
				Description: description,
				Priority:    domain.AlertPriorityMedium,
			}
			if err := jr.store.AlertRepository.Create(ctx, alert); err != nil {
				logger.Error("Failed to create condition alert", "tool_id", tool.ID, "error", err)
				continue
			}
			count++
			logger.Debug("Raised condition alert", "tool_id", tool.ID, "name", tool.Name)
		}

		logger.Info("Raised tool condition alerts", "count", count)
	})
}
