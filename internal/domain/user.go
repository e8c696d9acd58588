package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the verified caller role handed to us by the identity collaborator.
type Role string

const (
	RoleFarmer Role = "farmer" // rents equipment
	RoleOwner  Role = "owner"  // lists equipment
)

func (r Role) Valid() bool {
	return r == RoleFarmer || r == RoleOwner
}

// Identity is the authenticated caller attached to every request. It is
// produced by the auth middleware; the services trust it completely.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

func (i Identity) IsFarmer() bool { return i.Role == RoleFarmer }
func (i Identity) IsOwner() bool  { return i.Role == RoleOwner }

type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Location  string    `json:"location,omitempty"`
	Role      Role      `json:"role,omitempty"`
	CreatedOn time.Time `json:"created_on"`
}
