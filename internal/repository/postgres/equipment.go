package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"raitha-mithra-backend/internal/domain"
	"raitha-mithra-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

const equipmentColumns = `e.id, e.slug, e.owner_id, e.name, e.type, COALESCE(e.description, ''),
	e.price_per_day_paise, e.location, e.availability_status, COALESCE(e.image_url, ''), e.created_on, e.updated_on`

func scanEquipment(row interface{ Scan(...any) error }, e *domain.Equipment) error {
	return row.Scan(&e.ID, &e.Slug, &e.OwnerID, &e.Name, &e.Type, &e.Description,
		&e.PricePerDayPaise, &e.Location, &e.AvailabilityStatus, &e.ImageURL, &e.CreatedOn, &e.UpdatedOn)
}

func (r *equipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	now := time.Now()
	e.CreatedOn = now
	e.UpdatedOn = now
	query := `INSERT INTO equipment (id, slug, owner_id, name, type, description, price_per_day_paise, location, availability_status, image_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.Slug, e.OwnerID, e.Name, e.Type, e.Description,
		e.PricePerDayPaise, e.Location, e.AvailabilityStatus, e.ImageURL, e.CreatedOn, e.UpdatedOn)
	return translateError(err, "equipment not found", "equipment slug already exists")
}

func (r *equipmentRepository) getOne(ctx context.Context, where string, arg any) (*domain.Equipment, error) {
	e := &domain.Equipment{Owner: &domain.User{}}
	query := `SELECT ` + equipmentColumns + `, u.id, u.name, COALESCE(u.phone, ''), COALESCE(u.location, '')
	          FROM equipment e JOIN users u ON u.id = e.owner_id WHERE ` + where
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&e.ID, &e.Slug, &e.OwnerID, &e.Name, &e.Type, &e.Description,
		&e.PricePerDayPaise, &e.Location, &e.AvailabilityStatus, &e.ImageURL, &e.CreatedOn, &e.UpdatedOn,
		&e.Owner.ID, &e.Owner.Name, &e.Owner.Phone, &e.Owner.Location)
	if err != nil {
		return nil, translateError(err, "equipment not found", "")
	}
	return e, nil
}

func (r *equipmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Equipment, error) {
	return r.getOne(ctx, "e.id = $1", id)
}

func (r *equipmentRepository) GetBySlug(ctx context.Context, slug string) (*domain.Equipment, error) {
	return r.getOne(ctx, "e.slug = $1", slug)
}

func (r *equipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	e.UpdatedOn = time.Now()
	query := `UPDATE equipment SET slug=$1, name=$2, type=$3, description=$4, price_per_day_paise=$5,
	          location=$6, availability_status=$7, image_url=$8, updated_on=$9 WHERE id=$10`
	res, err := r.db.ExecContext(ctx, query, e.Slug, e.Name, e.Type, e.Description, e.PricePerDayPaise,
		e.Location, e.AvailabilityStatus, e.ImageURL, e.UpdatedOn, e.ID)
	if err != nil {
		return translateError(err, "equipment not found", "equipment slug already exists")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return domain.Internal(err, "storage failure")
	}
	if rows == 0 {
		return domain.NotFound("equipment not found")
	}
	return nil
}

func (r *equipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return translateError(err, "equipment not found", "equipment has dependent records")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return domain.Internal(err, "storage failure")
	}
	if rows == 0 {
		return domain.NotFound("equipment not found")
	}
	return nil
}

func (r *equipmentRepository) List(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + `, u.id, u.name, COALESCE(u.phone, ''), COALESCE(u.location, '')
	          FROM equipment e JOIN users u ON u.id = e.owner_id WHERE 1=1`
	args := []any{}
	argIdx := 1

	if filter.Type != "" {
		query += fmt.Sprintf(" AND e.type ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Type+"%")
		argIdx++
	}
	if filter.Location != "" {
		query += fmt.Sprintf(" AND e.location ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Location+"%")
		argIdx++
	}
	if filter.AvailabilityStatus != "" {
		query += fmt.Sprintf(" AND e.availability_status = $%d", argIdx)
		args = append(args, filter.AvailabilityStatus)
		argIdx++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (e.name ILIKE $%d OR e.description ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	query += " ORDER BY e.created_on DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.Internal(err, "storage failure")
	}
	defer rows.Close()

	var items []domain.Equipment
	for rows.Next() {
		e := domain.Equipment{Owner: &domain.User{}}
		if err := rows.Scan(&e.ID, &e.Slug, &e.OwnerID, &e.Name, &e.Type, &e.Description,
			&e.PricePerDayPaise, &e.Location, &e.AvailabilityStatus, &e.ImageURL, &e.CreatedOn, &e.UpdatedOn,
			&e.Owner.ID, &e.Owner.Name, &e.Owner.Phone, &e.Owner.Location); err != nil {
			return nil, domain.Internal(err, "storage failure")
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "storage failure")
	}
	return items, nil
}

func (r *equipmentRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + `
	          FROM equipment e WHERE e.owner_id = $1 ORDER BY e.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, domain.Internal(err, "storage failure")
	}
	defer rows.Close()

	var items []domain.Equipment
	for rows.Next() {
		var e domain.Equipment
		if err := scanEquipment(rows, &e); err != nil {
			return nil, domain.Internal(err, "storage failure")
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "storage failure")
	}
	return items, nil
}
