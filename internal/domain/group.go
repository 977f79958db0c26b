package domain

import (
	"time"

	"github.com/google/uuid"
)

// Group is a named collection of users with one administrator.
// The administrator is always a member.
type Group struct {
	ID          uuid.UUID
	Name        string
	Description string
	Type        GroupType
	AdminID     uuid.UUID
	MemberCount int
	CreatedAt   time.Time
}

// GroupMember is one row of a group's member set.
type GroupMember struct {
	GroupID  uuid.UUID
	UserID   uuid.UUID
	JoinedAt time.Time
}

// GroupUpdateParams holds the editable group fields. Nil means unchanged.
type GroupUpdateParams struct {
	Name        *string
	Description *string
	Type        *GroupType
}
