package publication

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

// GetByID returns a publication with its variant payload.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Publication, error) {
	p, err := s.publications.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get publication: %w", err)
	}
	return p, nil
}

// ListByAuthor returns every publication of an author, newest first.
func (s *Service) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Publication, error) {
	if authorID == uuid.Nil {
		return nil, domain.NewValidationError("author_id", "required")
	}
	list, err := s.publications.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("list publications by author: %w", err)
	}
	return list, nil
}

// ListByGroup returns the group posts written into a group.
// Fails with domain.ErrNotFound if the group does not exist.
func (s *Service) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*domain.Publication, error) {
	exists, err := s.groups.Exists(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("check group: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("group %s: %w", groupID, domain.ErrNotFound)
	}

	list, err := s.publications.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list group posts: %w", err)
	}
	return list, nil
}

// ListByGoal returns routines whose goal contains substr, ignoring case.
func (s *Service) ListByGoal(ctx context.Context, substr string) ([]*domain.Publication, error) {
	substr = strings.TrimSpace(substr)
	if substr == "" {
		return nil, domain.NewValidationError("goal", "required")
	}
	list, err := s.publications.ListRoutinesByGoal(ctx, substr)
	if err != nil {
		return nil, fmt.Errorf("list routines by goal: %w", err)
	}
	return list, nil
}

// List returns one page of the publication feed, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Publication, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.FeedPageSize
	}
	limit = min(limit, s.cfg.MaxFeedPageSize)

	list, err := s.publications.List(ctx, domain.PublicationFilter{
		Kind:   input.Kind,
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list publications: %w", err)
	}
	return list, nil
}

// History returns the most recent audit records of a publication, newest
// first. Only the author may read it.
func (s *Service) History(ctx context.Context, actor domain.Actor, publicationID uuid.UUID) ([]domain.AuditRecord, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	if publicationID == uuid.Nil {
		return nil, domain.NewValidationError("publication_id", "required")
	}

	p, err := s.publications.GetByID(ctx, publicationID)
	if err != nil {
		return nil, fmt.Errorf("get publication: %w", err)
	}
	if p.AuthorID != actor.UserID {
		return nil, fmt.Errorf("history of publication %s: %w", publicationID, domain.ErrForbidden)
	}

	records, err := s.audit.GetByEntity(ctx, domain.EntityTypePublication, publicationID, s.cfg.HistoryPageSize)
	if err != nil {
		return nil, fmt.Errorf("get publication history: %w", err)
	}
	return records, nil
}
