package group

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vidafit-backend/internal/domain"
	"github.com/heartmarshall/vidafit-backend/internal/sanitize"
)

// EditGroup changes name, description or type. Only the administrator may
// edit; renaming onto an existing name fails with domain.ErrConflict.
func (s *Service) EditGroup(ctx context.Context, actor domain.Actor, input EditGroupInput) (*domain.Group, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.GroupUpdateParams{
		Name:        sanitize.Ptr(input.Name),
		Description: sanitize.Ptr(input.Description),
		Type:        input.Type,
	}
	if params.Name != nil && *params.Name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	var updated *domain.Group
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.groups.LockForUpdate(txCtx, input.GroupID)
		if err != nil {
			return fmt.Errorf("lock group: %w", err)
		}
		if current.AdminID != actor.UserID {
			return fmt.Errorf("edit group %s: %w", input.GroupID, domain.ErrForbidden)
		}

		if params.Name != nil && *params.Name != current.Name {
			taken, err := s.groups.NameTaken(txCtx, *params.Name, current.ID)
			if err != nil {
				return fmt.Errorf("check group name: %w", err)
			}
			if taken {
				return fmt.Errorf("group name %q: %w", *params.Name, domain.ErrConflict)
			}
		}

		updated, err = s.groups.Update(txCtx, input.GroupID, params)
		if err != nil {
			return fmt.Errorf("update group: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeGroup,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    editChanges(current, params),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "group updated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("group_id", updated.ID.String()),
	)

	return updated, nil
}

func editChanges(old *domain.Group, p domain.GroupUpdateParams) map[string]any {
	changes := map[string]any{}
	if p.Name != nil && *p.Name != old.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": *p.Name}
	}
	if p.Description != nil && *p.Description != old.Description {
		changes["description"] = map[string]any{"old": old.Description, "new": *p.Description}
	}
	if p.Type != nil && *p.Type != old.Type {
		changes["type"] = map[string]any{"old": string(old.Type), "new": string(*p.Type)}
	}
	return changes
}
