package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"raitha-mithra-backend/internal/domain"
	"raitha-mithra-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.EquipmentRepository
	repository.BookingRepository
	repository.ReviewRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		UserRepository:      NewUserRepository(db),
		EquipmentRepository: NewEquipmentRepository(db),
		BookingRepository:   NewBookingRepository(db),
		ReviewRepository:    NewReviewRepository(db),
	}
}

const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
	pqExclusionViolation  = "23P01"
)

// translateError maps storage failures into the domain error taxonomy.
// Constraint violations become conflicts, missing rows become not-found,
// everything else is internal.
func translateError(err error, notFoundMsg, conflictMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound("%s", notFoundMsg)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqForeignKeyViolation, pqUniqueViolation, pqExclusionViolation:
			return domain.Conflict("%s", conflictMsg)
		}
	}
	return domain.Internal(err, "storage failure")
}
