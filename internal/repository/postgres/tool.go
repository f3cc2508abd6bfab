package postgres

import (
	"context"
	"database/sql"
	"time"

	"toolcrib-backend/internal/domain"
	"toolcrib-backend/internal/repository"
)

const toolColumns = `id, name, COALESCE(code, ''), COALESCE(description, ''), image_url, status, condition, COALESCE(category, ''), COALESCE(location, ''), acquisition_date, last_maintenance_date, COALESCE(notes, ''), created_on`

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

func scanTool(row interface{ Scan(...interface{}) error }) (*domain.Tool, error) {
	t := &domain.Tool{}
	err := row.Scan(&t.ID, &t.Name, &t.Code, &t.Description, &t.ImageURL, &t.Status, &t.Condition, &t.Category, &t.Location, &t.AcquisitionDate, &t.LastMaintenanceDate, &t.Notes, &t.CreatedOn)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *toolRepository) Create(ctx context.Context, t *domain.Tool) error {
	query := `INSERT INTO tools (name, code, description, image_url, status, condition, category, location, acquisition_date, last_maintenance_date, notes, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	return r.db.QueryRowContext(ctx, query, t.Name, t.Code, t.Description, t.ImageURL, t.Status, t.Condition, t.Category, t.Location, t.AcquisitionDate, t.LastMaintenanceDate, t.Notes, time.Now()).Scan(&t.ID)
}

func (r *toolRepository) GetByID(ctx context.Context, id int32) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE id = $1`
	return scanTool(r.db.QueryRowContext(ctx, query, id))
}

func (r *toolRepository) List(ctx context.Context) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, err
		}
		tools = append(tools, *t)
	}
	return tools, rows.Err()
}

func (r *toolRepository) Update(ctx context.Context, t *domain.Tool) error {
	query := `UPDATE tools SET name=$1, code=$2, description=$3, image_url=$4, status=$5, condition=$6, category=$7, location=$8, acquisition_date=$9, last_maintenance_date=$10, notes=$11 WHERE id=$12`
	res, err := r.db.ExecContext(ctx, query, t.Name, t.Code, t.Description, t.ImageURL, t.Status, t.Condition, t.Category, t.Location, t.AcquisitionDate, t.LastMaintenanceDate, t.Notes, t.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *toolRepository) ApplyEffect(ctx context.Context, id int32, effect domain.ToolEffect, expect *domain.ToolStatus) (bool, error) {
	return applyToolEffect(ctx, r.db, id, effect, expect)
}

func (r *toolRepository) Delete(ctx context.Context, id int32) (bool, bool, error) {
	// The NOT EXISTS guard and the delete are one statement so a reservation
	// created concurrently cannot slip between check and delete.
	query := `DELETE FROM tools WHERE id = $1
	          AND NOT EXISTS (SELECT 1 FROM reservations WHERE tool_id = $1 AND status IN ('PENDING', 'ACTIVE'))`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, false, err
	}
	if n > 0 {
		return true, false, nil
	}

	var blocked bool
	query = `SELECT EXISTS (SELECT 1 FROM reservations WHERE tool_id = $1 AND status IN ('PENDING', 'ACTIVE'))`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&blocked); err != nil {
		return false, false, err
	}
	return false, blocked, nil
}

func (r *toolRepository) ListByCondition(ctx context.Context, condition domain.ToolCondition) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE condition = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, condition)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, err
		}
		tools = append(tools, *t)
	}
	return tools, rows.Err()
}
