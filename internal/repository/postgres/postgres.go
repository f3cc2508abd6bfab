package postgres

import (
	"database/sql"

	"toolcrib-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ToolRepository
	repository.ReservationRepository
	repository.RatingRepository
	repository.AlertRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		ToolRepository:        NewToolRepository(db),
		ReservationRepository: NewReservationRepository(db),
		RatingRepository:      NewRatingRepository(db),
		AlertRepository:       NewAlertRepository(db),
		UserRepository:        NewUserRepository(db),
	}
}
