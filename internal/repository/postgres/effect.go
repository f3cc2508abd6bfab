package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"toolcrib-backend/internal/domain"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// applyToolEffect builds and runs the UPDATE for a tool effect. When expect is
// non-nil the update is conditioned on the tool's current status; applied
// reports whether a row matched.
func applyToolEffect(ctx context.Context, ex execer, toolID int32, effect domain.ToolEffect, expect *domain.ToolStatus) (bool, error) {
	if effect.IsZero() {
		return true, nil
	}

	var set []string
	var args []interface{}
	idx := 1
	if effect.Status != nil {
		set = append(set, fmt.Sprintf("status = $%d", idx))
		args = append(args, *effect.Status)
		idx++
	}
	if effect.Condition != nil {
		set = append(set, fmt.Sprintf("condition = $%d", idx))
		args = append(args, *effect.Condition)
		idx++
	}
	if effect.LastMaintenanceDate != nil {
		set = append(set, fmt.Sprintf("last_maintenance_date = $%d", idx))
		args = append(args, *effect.LastMaintenanceDate)
		idx++
	}

	query := fmt.Sprintf("UPDATE tools SET %s WHERE id = $%d", strings.Join(set, ", "), idx)
	args = append(args, toolID)
	idx++
	if expect != nil {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, *expect)
	}

	res, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
