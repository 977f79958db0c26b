package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

// GetGroup returns a group with its member count.
func (s *Service) GetGroup(ctx context.Context, groupID uuid.UUID) (*domain.Group, error) {
	g, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	return g, nil
}

// ListPublic returns every PUBLIC group.
func (s *Service) ListPublic(ctx context.Context) ([]*domain.Group, error) {
	groups, err := s.groups.ListPublic(ctx)
	if err != nil {
		return nil, fmt.Errorf("list public groups: %w", err)
	}
	return groups, nil
}

// ListByMember returns the groups userID belongs to, regardless of type.
func (s *Service) ListByMember(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}
	groups, err := s.groups.ListByMember(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list groups by member: %w", err)
	}
	return groups, nil
}

// ListMembers returns the member set of a group.
// Fails with domain.ErrNotFound if the group does not exist.
func (s *Service) ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.GroupMember, error) {
	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	members, err := s.groups.ListMembers(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}
