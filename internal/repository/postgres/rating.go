package postgres

import (
	"context"
	"database/sql"
	"time"

	"toolcrib-backend/internal/domain"
	"toolcrib-backend/internal/repository"
)

type ratingRepository struct {
	db *sql.DB
}

func NewRatingRepository(db *sql.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) List(ctx context.Context) ([]domain.Rating, error) {
	query := `SELECT id, reservation_id, tool_id, user_id, tool_condition, user_rating, COALESCE(comments, ''), rated_by, created_on
	          FROM ratings ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []domain.Rating
	for rows.Next() {
		var rt domain.Rating
		if err := rows.Scan(&rt.ID, &rt.ReservationID, &rt.ToolID, &rt.UserID, &rt.ToolCondition, &rt.UserRating, &rt.Comments, &rt.RatedBy, &rt.CreatedOn); err != nil {
			return nil, err
		}
		ratings = append(ratings, rt)
	}
	return ratings, rows.Err()
}

// Closeout runs the three closeout writes in one transaction. The reservation
// compare-and-swap goes first: if another closeout already won, the
// transaction rolls back with nothing applied.
func (r *ratingRepository) Closeout(ctx context.Context, rating *domain.Rating, effect domain.ToolEffect) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE reservations SET status = $1 WHERE id = $2 AND status = $3`,
		domain.ReservationStatusCompleted, rating.ReservationID, domain.ReservationStatusActive)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO ratings (reservation_id, tool_id, user_id, tool_condition, user_rating, comments, rated_by, created_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_on`,
		rating.ReservationID, rating.ToolID, rating.UserID, rating.ToolCondition, rating.UserRating, rating.Comments, rating.RatedBy, time.Now()).
		Scan(&rating.ID, &rating.CreatedOn)
	if err != nil {
		return false, err
	}

	if _, err := applyToolEffect(ctx, tx, rating.ToolID, effect, nil); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}
