package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"raitha-mithra-backend/internal/domain"
	"raitha-mithra-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now()
	b.CreatedOn = now
	b.UpdatedOn = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Internal(err, "storage failure")
	}
	defer tx.Rollback()

	query := `INSERT INTO bookings (id, equipment_id, renter_id, owner_id, start_date, end_date, status, total_amount_paise, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err := tx.ExecContext(ctx, query, b.ID, b.EquipmentID, b.RenterID, b.OwnerID,
		b.StartDate, b.EndDate, b.Status, b.TotalAmountPaise, b.CreatedOn, b.UpdatedOn); err != nil {
		return translateError(err, "booking not found", "equipment is already booked for these dates")
	}

	if _, err := tx.ExecContext(ctx, `UPDATE equipment SET availability_status = $1, updated_on = $2 WHERE id = $3`,
		domain.AvailabilityRented, now, b.EquipmentID); err != nil {
		return domain.Internal(err, "storage failure")
	}

	if err := tx.Commit(); err != nil {
		return translateError(err, "booking not found", "equipment is already booked for these dates")
	}
	return nil
}

const bookingColumns = `b.id, b.equipment_id, b.renter_id, b.owner_id, b.start_date, b.end_date,
	b.status, b.total_amount_paise, b.created_on, b.updated_on`

const bookingJoins = ` FROM bookings b
	JOIN equipment e ON e.id = b.equipment_id
	JOIN users r ON r.id = b.renter_id
	JOIN users o ON o.id = b.owner_id`

const bookingPopulated = bookingColumns + `,
	e.id, e.name, e.type, COALESCE(e.image_url, ''),
	r.id, r.name, COALESCE(r.phone, ''),
	o.id, o.name, COALESCE(o.phone, '')`

func scanBookingPopulated(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	b := &domain.Booking{
		Equipment: &domain.Equipment{},
		Renter:    &domain.User{},
		Owner:     &domain.User{},
	}
	err := row.Scan(&b.ID, &b.EquipmentID, &b.RenterID, &b.OwnerID, &b.StartDate, &b.EndDate,
		&b.Status, &b.TotalAmountPaise, &b.CreatedOn, &b.UpdatedOn,
		&b.Equipment.ID, &b.Equipment.Name, &b.Equipment.Type, &b.Equipment.ImageURL,
		&b.Renter.ID, &b.Renter.Name, &b.Renter.Phone,
		&b.Owner.ID, &b.Owner.Name, &b.Owner.Phone)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	query := `SELECT ` + bookingPopulated + bookingJoins + ` WHERE b.id = $1`
	b, err := scanBookingPopulated(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err, "booking not found", "")
	}
	return b, nil
}

func (r *bookingRepository) list(ctx context.Context, where string, arg any) ([]domain.Booking, error) {
	query := `SELECT ` + bookingPopulated + bookingJoins + ` WHERE ` + where + ` ORDER BY b.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, domain.Internal(err, "storage failure")
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBookingPopulated(rows)
		if err != nil {
			return nil, domain.Internal(err, "storage failure")
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "storage failure")
	}
	return bookings, nil
}

func (r *bookingRepository) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]domain.Booking, error) {
	return r.list(ctx, "b.renter_id = $1", renterID)
}

func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Booking, error) {
	return r.list(ctx, "b.owner_id = $1", ownerID)
}

// HasConflict applies the closed-interval overlap test: an existing active
// booking conflicts when its start is not after the new end and its end is
// not before the new start.
func (r *bookingRepository) HasConflict(ctx context.Context, equipmentID uuid.UUID, start, end time.Time) (bool, error) {
	query := `SELECT EXISTS (
	            SELECT 1 FROM bookings
	            WHERE equipment_id = $1
	              AND status IN ('pending', 'approved')
	              AND start_date <= $3
	              AND end_date >= $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, equipmentID, start, end).Scan(&exists); err != nil {
		return false, domain.Internal(err, "storage failure")
	}
	return exists, nil
}

func (r *bookingRepository) CountActiveByEquipment(ctx context.Context, equipmentID uuid.UUID) (int64, error) {
	query := `SELECT count(*) FROM bookings WHERE equipment_id = $1 AND status IN ('pending', 'approved')`
	var count int64
	if err := r.db.QueryRowContext(ctx, query, equipmentID).Scan(&count); err != nil {
		return 0, domain.Internal(err, "storage failure")
	}
	return count, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, b *domain.Booking, equipmentStatus domain.AvailabilityStatus) error {
	now := time.Now()
	b.UpdatedOn = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Internal(err, "storage failure")
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE bookings SET status = $1, updated_on = $2 WHERE id = $3`,
		b.Status, now, b.ID)
	if err != nil {
		return domain.Internal(err, "storage failure")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return domain.Internal(err, "storage failure")
	}
	if rows == 0 {
		return domain.NotFound("booking not found")
	}

	if _, err := tx.ExecContext(ctx, `UPDATE equipment SET availability_status = $1, updated_on = $2 WHERE id = $3`,
		equipmentStatus, now, b.EquipmentID); err != nil {
		return domain.Internal(err, "storage failure")
	}

	if err := tx.Commit(); err != nil {
		return domain.Internal(err, "storage failure")
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, bookingID, equipmentID uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Internal(err, "storage failure")
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		return domain.Internal(err, "storage failure")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return domain.Internal(err, "storage failure")
	}
	if rows == 0 {
		return domain.NotFound("booking not found")
	}

	if _, err := tx.ExecContext(ctx, `UPDATE equipment SET availability_status = $1, updated_on = $2 WHERE id = $3`,
		domain.AvailabilityAvailable, time.Now(), equipmentID); err != nil {
		return domain.Internal(err, "storage failure")
	}

	if err := tx.Commit(); err != nil {
		return domain.Internal(err, "storage failure")
	}
	return nil
}
