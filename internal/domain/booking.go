package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusApproved, BookingStatusRejected,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition leaves the status.
func (s BookingStatus) Terminal() bool {
	switch s {
	case BookingStatusRejected, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// Active bookings count for date-overlap exclusivity.
func (s BookingStatus) Active() bool {
	return s == BookingStatusPending || s == BookingStatusApproved
}

// CanTransition encodes the owner-driven part of the booking state machine.
// Renter cancellation of a pending booking is a hard delete, not a transition.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case BookingStatusPending:
		return to == BookingStatusApproved || to == BookingStatusRejected
	case BookingStatusApproved:
		return to == BookingStatusCompleted
	}
	return false
}

// AvailabilityAfter returns the equipment availability implied by a booking
// entering the given status.
func AvailabilityAfter(status BookingStatus) AvailabilityStatus {
	switch status {
	case BookingStatusApproved, BookingStatusCompleted, BookingStatusPending:
		return AvailabilityRented
	default:
		return AvailabilityAvailable
	}
}

type Booking struct {
	ID               uuid.UUID     `json:"id"`
	EquipmentID      uuid.UUID     `json:"equipment_id"`
	RenterID         uuid.UUID     `json:"renter_id"`
	OwnerID          uuid.UUID     `json:"owner_id"` // denormalized from equipment at creation
	Equipment        *Equipment    `json:"equipment,omitempty"`
	Renter           *User         `json:"renter,omitempty"`
	Owner            *User         `json:"owner,omitempty"`
	StartDate        time.Time     `json:"start_date"`
	EndDate          time.Time     `json:"end_date"`
	Status           BookingStatus `json:"status"`
	TotalAmountPaise int64         `json:"total_amount_paise"` // frozen at creation
	CreatedOn        time.Time     `json:"created_on"`
	UpdatedOn        time.Time     `json:"updated_on"`
}

// OverlapsRange reports closed-interval overlap with [start, end]. A booking
// ending on the day another starts counts as a conflict.
func (b *Booking) OverlapsRange(start, end time.Time) bool {
	return !b.StartDate.After(end) && !b.EndDate.Before(start)
}

// IsParty reports whether the user is the renter or the owner of the booking.
func (b *Booking) IsParty(userID uuid.UUID) bool {
	return b.RenterID == userID || b.OwnerID == userID
}
