package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

// Event is a post-commit notification handed to the event sink.
type Event struct {
	Type       EventType
	EntityID   uuid.UUID
	UserID     uuid.UUID
	OccurredAt time.Time
	Attributes map[string]string
}

// NewEvent builds an Event stamped with the current time.
func NewEvent(typ EventType, entityID, userID uuid.UUID, attrs map[string]string) Event {
	return Event{
		Type:       typ,
		EntityID:   entityID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
		Attributes: attrs,
	}
}
