package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment is attached to exactly one publication and is never edited.
type Comment struct {
	ID            uuid.UUID
	PublicationID uuid.UUID
	AuthorID      uuid.UUID
	Body          string
	CreatedAt     time.Time
}

// Verification records that a specialist reviewed a publication.
type Verification struct {
	ID            uuid.UUID
	PublicationID uuid.UUID
	SpecialistID  uuid.UUID
	Outcome       bool
	Comment       string
	VerifiedAt    time.Time

	// Specialty is the verifier's declared specialty. Filled on read only.
	Specialty string
}

// SharedPost records that a publication was shared into a group.
type SharedPost struct {
	ID            uuid.UUID
	PublicationID uuid.UUID
	GroupID       uuid.UUID
	SharedBy      uuid.UUID
	SharedAt      time.Time
}

// SharedPostView is a share joined with the current state of its
// publication and group at read time.
type SharedPostView struct {
	ShareID          uuid.UUID
	SharedAt         time.Time
	GroupID          uuid.UUID
	GroupName        string
	PublicationID    uuid.UUID
	PublicationKind  PublicationKind
	PublicationTitle string
	PublicationBody  string
	AuthorID         uuid.UUID
	AuthorName       string
}
