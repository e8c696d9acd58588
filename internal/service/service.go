package service

import (
	"context"

	"github.com/google/uuid"

	"raitha-mithra-backend/internal/domain"
)

type CreateEquipmentInput struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	Description      string `json:"description"`
	PricePerDayPaise int64  `json:"price_per_day_paise"`
	Location         string `json:"location"`
	ImageURL         string `json:"image_url"`
}

// UpdateEquipmentInput is a patch: nil fields are left untouched, set fields
// are re-validated.
type UpdateEquipmentInput struct {
	Name               *string `json:"name"`
	Type               *string `json:"type"`
	Description        *string `json:"description"`
	PricePerDayPaise   *int64  `json:"price_per_day_paise"`
	Location           *string `json:"location"`
	ImageURL           *string `json:"image_url"`
	AvailabilityStatus *string `json:"availability_status"`
}

type EquipmentService interface {
	Create(ctx context.Context, actor domain.Identity, in CreateEquipmentInput) (*domain.Equipment, error)
	List(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error)
	ListMine(ctx context.Context, actor domain.Identity) ([]domain.Equipment, error)
	// Get resolves by id when the token parses as a UUID, otherwise by slug.
	Get(ctx context.Context, idOrSlug string) (*domain.Equipment, error)
	Update(ctx context.Context, actor domain.Identity, id uuid.UUID, patch UpdateEquipmentInput) (*domain.Equipment, error)
	Delete(ctx context.Context, actor domain.Identity, id uuid.UUID) error
}

type CreateBookingInput struct {
	EquipmentID string `json:"equipment_id"`
	StartDate   string `json:"start_date"` // yyyy-mm-dd
	EndDate     string `json:"end_date"`   // yyyy-mm-dd
}

type BookingService interface {
	Create(ctx context.Context, actor domain.Identity, in CreateBookingInput) (*domain.Booking, error)
	// List returns the caller's side of the ledger: rentals for farmers,
	// lendings for owners.
	List(ctx context.Context, actor domain.Identity) ([]domain.Booking, error)
	Get(ctx context.Context, actor domain.Identity, id uuid.UUID) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, actor domain.Identity, id uuid.UUID, target domain.BookingStatus) (*domain.Booking, error)
	// Cancel hard-deletes a pending booking on behalf of its renter and
	// releases the equipment.
	Cancel(ctx context.Context, actor domain.Identity, id uuid.UUID) error
}

type CreateReviewInput struct {
	BookingID string `json:"booking_id"`
	Rating    int32  `json:"rating"`
	Comment   string `json:"comment"`
}

type UpdateReviewInput struct {
	Rating  *int32  `json:"rating"`
	Comment *string `json:"comment"`
}

type ReviewService interface {
	Create(ctx context.Context, actor domain.Identity, in CreateReviewInput) (*domain.Review, error)
	ListForEquipment(ctx context.Context, equipmentID uuid.UUID) ([]domain.Review, error)
	ListMine(ctx context.Context, actor domain.Identity) ([]domain.Review, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	Update(ctx context.Context, actor domain.Identity, id uuid.UUID, patch UpdateReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, actor domain.Identity, id uuid.UUID) error
}

// EmailService sends best-effort lifecycle notifications. Failures are logged
// by callers and never affect the operation result.
type EmailService interface {
	SendBookingRequested(ctx context.Context, ownerEmail, renterName, equipmentName string) error
	SendBookingApproved(ctx context.Context, renterEmail, equipmentName, ownerName string) error
	SendBookingRejected(ctx context.Context, renterEmail, equipmentName, ownerName string) error
	SendBookingCancelled(ctx context.Context, ownerEmail, renterName, equipmentName string) error
	SendBookingCompleted(ctx context.Context, email, equipmentName string, amountPaise int64) error
	SendBookingReminder(ctx context.Context, renterEmail, equipmentName, startDate string) error
	SendReturnReminder(ctx context.Context, ownerEmail, equipmentName, endDate string) error
}
