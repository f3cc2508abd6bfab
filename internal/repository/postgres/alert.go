package postgres

import (
	"context"
	"database/sql"
	"time"

	"toolcrib-backend/internal/domain"
	"toolcrib-backend/internal/repository"
)

type alertRepository struct {
	db *sql.DB
}

func NewAlertRepository(db *sql.DB) repository.AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(ctx context.Context, a *domain.Alert) error {
	query := `INSERT INTO alerts (tool_id, description, priority, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query, a.ToolID, a.Description, a.Priority, time.Now()).Scan(&a.ID, &a.CreatedOn)
}

func (r *alertRepository) List(ctx context.Context, priority domain.AlertPriority) ([]domain.Alert, error) {
	query := `SELECT id, tool_id, description, priority, created_on FROM alerts`
	var args []interface{}
	if priority != "" {
		query += ` WHERE priority = $1`
		args = append(args, priority)
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		var a domain.Alert
		if err := rows.Scan(&a.ID, &a.ToolID, &a.Description, &a.Priority, &a.CreatedOn); err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func (r *alertRepository) ExistsForTool(ctx context.Context, toolID int32, description string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM alerts WHERE tool_id = $1 AND description = $2)`
	err := r.db.QueryRowContext(ctx, query, toolID, description).Scan(&exists)
	return exists, err
}
