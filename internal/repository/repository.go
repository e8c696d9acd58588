package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"raitha-mithra-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Equipment, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Equipment, error)
}

type BookingRepository interface {
	// Create inserts the booking and flips the equipment to rented in one
	// transaction. A concurrent conflicting insert fails the exclusion
	// constraint and surfaces as a conflict error.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Booking, error)
	// HasConflict runs the closed-interval overlap test against pending and
	// approved bookings of the equipment.
	HasConflict(ctx context.Context, equipmentID uuid.UUID, start, end time.Time) (bool, error)
	CountActiveByEquipment(ctx context.Context, equipmentID uuid.UUID) (int64, error)
	// UpdateStatus persists the booking status and the implied equipment
	// availability in one transaction.
	UpdateStatus(ctx context.Context, b *domain.Booking, equipmentStatus domain.AvailabilityStatus) error
	// Delete removes the booking and resets the equipment to available in one
	// transaction. The only hard-delete path (renter cancellation of a
	// pending booking).
	Delete(ctx context.Context, bookingID, equipmentID uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
	ListByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]domain.Review, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]domain.Review, error)
	Update(ctx context.Context, rv *domain.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}
