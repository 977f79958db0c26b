package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

// History returns the most recent audit records of a group, newest first.
// Only the group admin may read it.
func (s *Service) History(ctx context.Context, actor domain.Actor, groupID uuid.UUID) ([]domain.AuditRecord, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	if groupID == uuid.Nil {
		return nil, domain.NewValidationError("group_id", "required")
	}

	g, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	if g.AdminID != actor.UserID {
		return nil, fmt.Errorf("history of group %s: %w", groupID, domain.ErrForbidden)
	}

	records, err := s.audit.GetByEntity(ctx, domain.EntityTypeGroup, groupID, s.cfg.HistoryPageSize)
	if err != nil {
		return nil, fmt.Errorf("get group history: %w", err)
	}
	return records, nil
}
