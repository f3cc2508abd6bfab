package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"toolcrib-backend/internal/domain"
	"toolcrib-backend/internal/repository"
)

const reservationColumns = `id, tool_id, user_id, start_date, end_date, status, COALESCE(notes, ''), created_on`

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func scanReservation(row interface{ Scan(...interface{}) error }) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	err := row.Scan(&res.ID, &res.ToolID, &res.UserID, &res.StartDate, &res.EndDate, &res.Status, &res.Notes, &res.CreatedOn)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) (bool, error) {
	// Guard and insert are one statement so a competing reservation cannot
	// slip between check and insert.
	query := `INSERT INTO reservations (tool_id, user_id, start_date, end_date, status, notes, created_on)
	          SELECT $1, $2, $3, $4, $5, $6, $7
	          WHERE NOT EXISTS (SELECT 1 FROM reservations WHERE tool_id = $1 AND status IN ('PENDING', 'ACTIVE'))
	          RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query, res.ToolID, res.UserID, res.StartDate, res.EndDate, res.Status, res.Notes, time.Now()).Scan(&res.ID, &res.CreatedOn)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *reservationRepository) CreateActive(ctx context.Context, res *domain.Reservation) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	claim, err := tx.ExecContext(ctx,
		`UPDATE tools SET status = $1 WHERE id = $2 AND status = $3`,
		domain.ToolStatusUnavailable, res.ToolID, domain.ToolStatusAvailable)
	if err != nil {
		return false, err
	}
	n, err := claim.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}

	query := `INSERT INTO reservations (tool_id, user_id, start_date, end_date, status, notes, created_on)
	          SELECT $1, $2, $3, $4, $5, $6, $7
	          WHERE NOT EXISTS (SELECT 1 FROM reservations WHERE tool_id = $1 AND status IN ('PENDING', 'ACTIVE'))
	          RETURNING id, created_on`
	err = tx.QueryRowContext(ctx, query, res.ToolID, res.UserID, res.StartDate, res.EndDate, res.Status, res.Notes, time.Now()).Scan(&res.ID, &res.CreatedOn)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	return scanReservation(r.db.QueryRowContext(ctx, query, id))
}

func (r *reservationRepository) List(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *reservationRepository) Transition(ctx context.Context, id int32, from, to domain.ReservationStatus, effect domain.ToolEffect) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var toolID int32
	err = tx.QueryRowContext(ctx,
		`UPDATE reservations SET status = $1 WHERE id = $2 AND status = $3 RETURNING tool_id`,
		to, id, from).Scan(&toolID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if _, err := applyToolEffect(ctx, tx, toolID, effect, nil); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func (r *reservationRepository) ListBetween(ctx context.Context, startDate, endDate string, statuses []domain.ReservationStatus) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE status = ANY($1)`
	ss := make([]string, len(statuses))
	for i, s := range statuses {
		ss[i] = string(s)
	}
	args := []interface{}{pq.Array(ss)}
	idx := 2
	if startDate != "" {
		query += fmt.Sprintf(" AND start_date >= $%d", idx)
		args = append(args, startDate)
		idx++
	}
	if endDate != "" {
		query += fmt.Sprintf(" AND end_date <= $%d", idx)
		args = append(args, endDate)
		idx++
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *reservationRepository) ListOverdue(ctx context.Context, asOf string) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE status = 'ACTIVE' AND end_date < $1 ORDER BY end_date`
	rows, err := r.db.QueryContext(ctx, query, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReservations(rows)
}

func collectReservations(rows *sql.Rows) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *res)
	}
	return reservations, rows.Err()
}
