package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered platform user. The core only reads users.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Role      UserRole
	CreatedAt time.Time
}

// SpecialistProfile holds the public credentials of a SPECIALIST user.
type SpecialistProfile struct {
	UserID         uuid.UUID
	Specialty      string
	CertificateURL *string
	Bio            *string
}

// Actor is the resolved identity of the caller. Every workflow operation
// receives it as an explicit argument.
type Actor struct {
	UserID uuid.UUID
	Role   UserRole
	Email  string
}

// IsZero reports whether the actor was never resolved.
func (a Actor) IsZero() bool {
	return a.UserID == uuid.Nil
}
