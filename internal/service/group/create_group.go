package group

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidafit-backend/internal/domain"
	"github.com/heartmarshall/vidafit-backend/internal/sanitize"
)

// CreateGroup creates a group administered by the actor, who becomes its
// first member. Fails with domain.ErrConflict if the name is taken.
func (s *Service) CreateGroup(ctx context.Context, actor domain.Actor, input CreateGroupInput) (*domain.Group, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := sanitize.Text(input.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	description := sanitize.Text(input.Description)

	var group *domain.Group
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// The unique index still catches a concurrent create with the same name.
		taken, err := s.groups.NameTaken(txCtx, name, uuid.Nil)
		if err != nil {
			return fmt.Errorf("check group name: %w", err)
		}
		if taken {
			return fmt.Errorf("group name %q: %w", name, domain.ErrConflict)
		}

		group, err = s.groups.Create(txCtx, &domain.Group{
			Name:        name,
			Description: description,
			Type:        input.Type,
			AdminID:     actor.UserID,
		})
		if err != nil {
			return fmt.Errorf("create group: %w", err)
		}

		if err := s.groups.AddMember(txCtx, group.ID, actor.UserID); err != nil {
			return fmt.Errorf("add admin member: %w", err)
		}
		group.MemberCount = 1

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeGroup,
			EntityID:   &group.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name": map[string]any{"new": name},
				"type": map[string]any{"new": string(input.Type)},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventGroupCreated, group.ID, actor.UserID, map[string]string{
		"name": group.Name,
	}))

	s.log.InfoContext(ctx, "group created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("group_id", group.ID.String()),
		slog.String("name", name),
	)

	return group, nil
}
