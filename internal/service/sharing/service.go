package sharing

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

type shareRepo interface {
	Create(ctx context.Context, s *domain.SharedPost) (*domain.SharedPost, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.SharedPostView, error)
	Count(ctx context.Context, publicationID, groupID uuid.UUID) (int, error)
}

type publicationRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type groupRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventSink interface {
	Publish(ctx context.Context, ev domain.Event)
}

// Service shares publications into groups.
type Service struct {
	shares       shareRepo
	publications publicationRepo
	groups       groupRepo
	tx           txManager
	events       eventSink
	log          *slog.Logger
}

// NewService creates a new Sharing service.
func NewService(
	log *slog.Logger,
	shares shareRepo,
	publications publicationRepo,
	groups groupRepo,
	tx txManager,
	events eventSink,
) *Service {
	return &Service{
		shares:       shares,
		publications: publications,
		groups:       groups,
		tx:           tx,
		events:       events,
		log:          log.With("service", "sharing"),
	}
}

// ShareInput identifies what to share and where.
type ShareInput struct {
	PublicationID uuid.UUID
	GroupID       uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ShareInput) Validate() error {
	var errs []domain.FieldError

	if i.PublicationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "publication_id", Message: "required"})
	}
	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ShareToGroup records that the actor shared a publication into a group.
// Repeated shares create separate records; the published event carries the
// number of shares of the publication in that group, this one included.
func (s *Service) ShareToGroup(ctx context.Context, actor domain.Actor, input ShareInput) (*domain.SharedPost, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		shared *domain.SharedPost
		count  int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.publications.Exists(txCtx, input.PublicationID)
		if err != nil {
			return fmt.Errorf("check publication: %w", err)
		}
		if !exists {
			return fmt.Errorf("publication %s: %w", input.PublicationID, domain.ErrNotFound)
		}
		if err := s.requireGroup(txCtx, input.GroupID); err != nil {
			return err
		}

		shared, err = s.shares.Create(txCtx, &domain.SharedPost{
			PublicationID: input.PublicationID,
			GroupID:       input.GroupID,
			SharedBy:      actor.UserID,
		})
		if err != nil {
			return fmt.Errorf("create share: %w", err)
		}

		count, err = s.shares.Count(txCtx, input.PublicationID, input.GroupID)
		if err != nil {
			return fmt.Errorf("count shares: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventPublicationShared, input.PublicationID, actor.UserID, map[string]string{
		"group_id":    input.GroupID.String(),
		"share_id":    shared.ID.String(),
		"share_count": strconv.Itoa(count),
	}))

	s.log.InfoContext(ctx, "publication shared",
		slog.String("user_id", actor.UserID.String()),
		slog.String("publication_id", input.PublicationID.String()),
		slog.String("group_id", input.GroupID.String()),
		slog.Int("share_count", count),
	)

	return shared, nil
}

// ListByGroup returns the shares of a group joined with the current state
// of each publication, newest first.
func (s *Service) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.SharedPostView, error) {
	if err := s.requireGroup(ctx, groupID); err != nil {
		return nil, err
	}

	views, err := s.shares.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list shared posts: %w", err)
	}
	return views, nil
}

func (s *Service) requireGroup(ctx context.Context, id uuid.UUID) error {
	exists, err := s.groups.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check group: %w", err)
	}
	if !exists {
		return fmt.Errorf("group %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
