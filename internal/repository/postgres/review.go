package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"raitha-mithra-backend/internal/domain"
	"raitha-mithra-backend/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	if rv.ID == uuid.Nil {
		rv.ID = uuid.New()
	}
	now := time.Now()
	rv.CreatedOn = now
	rv.UpdatedOn = now
	query := `INSERT INTO reviews (id, booking_id, renter_id, equipment_id, rating, comment, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, rv.ID, rv.BookingID, rv.RenterID, rv.EquipmentID,
		rv.Rating, rv.Comment, rv.CreatedOn, rv.UpdatedOn)
	// Unique index on booking_id backstops the duplicate check under
	// concurrent submission.
	return translateError(err, "review not found", "review already exists for this booking")
}

const reviewPopulated = `v.id, v.booking_id, v.renter_id, v.equipment_id, v.rating, v.comment, v.created_on, v.updated_on,
	r.id, r.name,
	e.id, e.name, e.type, COALESCE(e.image_url, ''),
	b.start_date, b.end_date`

const reviewJoins = ` FROM reviews v
	JOIN users r ON r.id = v.renter_id
	JOIN equipment e ON e.id = v.equipment_id
	JOIN bookings b ON b.id = v.booking_id`

func scanReviewPopulated(row interface{ Scan(...any) error }) (*domain.Review, error) {
	rv := &domain.Review{
		Renter:    &domain.User{},
		Equipment: &domain.Equipment{},
		Booking:   &domain.Booking{},
	}
	err := row.Scan(&rv.ID, &rv.BookingID, &rv.RenterID, &rv.EquipmentID, &rv.Rating, &rv.Comment,
		&rv.CreatedOn, &rv.UpdatedOn,
		&rv.Renter.ID, &rv.Renter.Name,
		&rv.Equipment.ID, &rv.Equipment.Name, &rv.Equipment.Type, &rv.Equipment.ImageURL,
		&rv.Booking.StartDate, &rv.Booking.EndDate)
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	query := `SELECT ` + reviewPopulated + reviewJoins + ` WHERE v.id = $1`
	rv, err := scanReviewPopulated(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err, "review not found", "")
	}
	return rv, nil
}

func (r *reviewRepository) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE booking_id = $1)`
	if err := r.db.QueryRowContext(ctx, query, bookingID).Scan(&exists); err != nil {
		return false, domain.Internal(err, "storage failure")
	}
	return exists, nil
}

func (r *reviewRepository) list(ctx context.Context, where string, arg any) ([]domain.Review, error) {
	query := `SELECT ` + reviewPopulated + reviewJoins + ` WHERE ` + where + ` ORDER BY v.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, domain.Internal(err, "storage failure")
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		rv, err := scanReviewPopulated(rows)
		if err != nil {
			return nil, domain.Internal(err, "storage failure")
		}
		reviews = append(reviews, *rv)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "storage failure")
	}
	return reviews, nil
}

func (r *reviewRepository) ListByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]domain.Review, error) {
	return r.list(ctx, "v.equipment_id = $1", equipmentID)
}

func (r *reviewRepository) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]domain.Review, error) {
	return r.list(ctx, "v.renter_id = $1", renterID)
}

func (r *reviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	rv.UpdatedOn = time.Now()
	res, err := r.db.ExecContext(ctx, `UPDATE reviews SET rating = $1, comment = $2, updated_on = $3 WHERE id = $4`,
		rv.Rating, rv.Comment, rv.UpdatedOn, rv.ID)
	if err != nil {
		return domain.Internal(err, "storage failure")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return domain.Internal(err, "storage failure")
	}
	if rows == 0 {
		return domain.NotFound("review not found")
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return domain.Internal(err, "storage failure")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return domain.Internal(err, "storage failure")
	}
	if rows == 0 {
		return domain.NotFound("review not found")
	}
	return nil
}
