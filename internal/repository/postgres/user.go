package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"raitha-mithra-backend/internal/domain"
	"raitha-mithra-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	query := `INSERT INTO users (id, name, email, phone, location, role, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Name, u.Email, u.Phone, u.Location, u.Role, time.Now())
	return translateError(err, "user not found", "user already exists")
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email, COALESCE(phone, ''), COALESCE(location, ''), role, created_on
	          FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Location, &u.Role, &u.CreatedOn)
	if err != nil {
		return nil, translateError(err, "user not found", "")
	}
	return u, nil
}
