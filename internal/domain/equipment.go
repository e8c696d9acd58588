package domain

import (
	"time"

	"github.com/google/uuid"
)

type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityRented      AvailabilityStatus = "rented"
	AvailabilityMaintenance AvailabilityStatus = "maintenance"
)

func (s AvailabilityStatus) Valid() bool {
	switch s {
	case AvailabilityAvailable, AvailabilityRented, AvailabilityMaintenance:
		return true
	}
	return false
}

type Equipment struct {
	ID                 uuid.UUID          `json:"id"`
	Slug               string             `json:"slug"`
	OwnerID            uuid.UUID          `json:"owner_id"`
	Owner              *User              `json:"owner,omitempty"` // populated when fetching details
	Name               string             `json:"name"`
	Type               string             `json:"type"`
	Description        string             `json:"description"`
	PricePerDayPaise   int64              `json:"price_per_day_paise"`
	Location           string             `json:"location"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status"`
	ImageURL           string             `json:"image_url"`
	CreatedOn          time.Time          `json:"created_on"`
	UpdatedOn          time.Time          `json:"updated_on"`
}

// EquipmentFilter holds the independently optional catalog filters. Zero value
// means no constraint on that field.
type EquipmentFilter struct {
	Type               string
	Location           string
	AvailabilityStatus AvailabilityStatus
	Search             string // matches name OR description
}
