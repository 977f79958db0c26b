package group

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

// JoinGroup adds the actor to a group.
// Fails with domain.ErrNotFound if the group or user does not exist and
// domain.ErrConflict if the actor is already a member.
func (s *Service) JoinGroup(ctx context.Context, actor domain.Actor, groupID uuid.UUID) error {
	if actor.IsZero() {
		return domain.ErrUnauthorized
	}
	if groupID == uuid.Nil {
		return domain.NewValidationError("group_id", "required")
	}

	if err := s.addMember(ctx, actor, groupID, actor.UserID, domain.AuditActionJoin, false); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "group joined",
		slog.String("user_id", actor.UserID.String()),
		slog.String("group_id", groupID.String()),
	)
	return nil
}

// AddMember adds userID to a group on behalf of its administrator.
// A duplicate add fails with domain.ErrConflict, like a duplicate join.
func (s *Service) AddMember(ctx context.Context, actor domain.Actor, groupID, userID uuid.UUID) error {
	if actor.IsZero() {
		return domain.ErrUnauthorized
	}

	var errs []domain.FieldError
	if groupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}
	if userID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	if err := s.addMember(ctx, actor, groupID, userID, domain.AuditActionAddMember, true); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "group member added",
		slog.String("user_id", actor.UserID.String()),
		slog.String("group_id", groupID.String()),
		slog.String("member_id", userID.String()),
	)
	return nil
}

// addMember is the read-then-write on the member set. The group row lock
// serializes it against every other membership change of the same group.
func (s *Service) addMember(ctx context.Context, actor domain.Actor, groupID, userID uuid.UUID, action domain.AuditAction, adminOnly bool) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		group, err := s.groups.LockForUpdate(txCtx, groupID)
		if err != nil {
			return fmt.Errorf("lock group: %w", err)
		}
		if adminOnly && group.AdminID != actor.UserID {
			return fmt.Errorf("add member to group %s: %w", groupID, domain.ErrForbidden)
		}

		exists, err := s.users.Exists(txCtx, userID)
		if err != nil {
			return fmt.Errorf("check user: %w", err)
		}
		if !exists {
			return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
		}

		member, err := s.groups.IsMember(txCtx, groupID, userID)
		if err != nil {
			return fmt.Errorf("check membership: %w", err)
		}
		if member {
			return fmt.Errorf("user %s in group %s: %w", userID, groupID, domain.ErrConflict)
		}

		if err := s.groups.AddMember(txCtx, groupID, userID); err != nil {
			return fmt.Errorf("add member: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeGroup,
			EntityID:   &groupID,
			Action:     action,
			Changes: map[string]any{
				"member": map[string]any{"new": userID.String()},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventGroupMemberAdded, groupID, actor.UserID, map[string]string{
		"member_id": userID.String(),
	}))
	return nil
}
