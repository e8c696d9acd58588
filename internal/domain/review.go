package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReviewRatingMin     = 1
	ReviewRatingMax     = 5
	ReviewCommentMinLen = 10
	ReviewCommentMaxLen = 500
)

type Review struct {
	ID          uuid.UUID  `json:"id"`
	BookingID   uuid.UUID  `json:"booking_id"` // at most one review per booking
	RenterID    uuid.UUID  `json:"renter_id"`
	EquipmentID uuid.UUID  `json:"equipment_id"` // denormalized from the booking
	Renter      *User      `json:"renter,omitempty"`
	Equipment   *Equipment `json:"equipment,omitempty"`
	Booking     *Booking   `json:"booking,omitempty"`
	Rating      int32      `json:"rating"`
	Comment     string     `json:"comment"`
	CreatedOn   time.Time  `json:"created_on"`
	UpdatedOn   time.Time  `json:"updated_on"`
}
