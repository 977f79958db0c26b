package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidafit-backend/internal/config"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
	"github.com/heartmarshall/vidafit-backend/internal/sanitize"
)

type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	ListByPublication(ctx context.Context, publicationID uuid.UUID) ([]*domain.Comment, error)
}

type publicationRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventSink interface {
	Publish(ctx context.Context, ev domain.Event)
}

// Service attaches comments to publications.
type Service struct {
	comments     commentRepo
	publications publicationRepo
	tx           txManager
	events       eventSink
	cfg          config.ContentConfig
	log          *slog.Logger
}

// NewService creates a new Comment service.
func NewService(
	log *slog.Logger,
	comments commentRepo,
	publications publicationRepo,
	tx txManager,
	events eventSink,
	cfg config.ContentConfig,
) *Service {
	return &Service{
		comments:     comments,
		publications: publications,
		tx:           tx,
		events:       events,
		cfg:          cfg,
		log:          log.With("service", "comment"),
	}
}

// CreateCommentInput holds the parameters for commenting on a publication.
type CreateCommentInput struct {
	PublicationID uuid.UUID
	Body          string
}

// Validate checks all fields and collects all errors.
func (i CreateCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.PublicationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "publication_id", Message: "required"})
	}
	if strings.TrimSpace(i.Body) == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateComment attaches a comment by the actor to a publication.
// Fails with domain.ErrNotFound if the publication does not exist.
func (s *Service) CreateComment(ctx context.Context, actor domain.Actor, input CreateCommentInput) (*domain.Comment, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	body := sanitize.Text(input.Body)
	if body == "" {
		return nil, domain.NewValidationError("body", "required")
	}
	if len(body) > s.cfg.MaxCommentLength {
		return nil, domain.NewValidationError("body", fmt.Sprintf("max %d characters", s.cfg.MaxCommentLength))
	}

	var created *domain.Comment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requirePublication(txCtx, input.PublicationID); err != nil {
			return err
		}

		var err error
		created, err = s.comments.Create(txCtx, &domain.Comment{
			PublicationID: input.PublicationID,
			AuthorID:      actor.UserID,
			Body:          body,
		})
		if err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventCommentCreated, created.ID, actor.UserID, map[string]string{
		"publication_id": input.PublicationID.String(),
	}))

	s.log.InfoContext(ctx, "comment created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("publication_id", input.PublicationID.String()),
		slog.String("comment_id", created.ID.String()),
	)

	return created, nil
}

// ListByPublication returns the comments of a publication, oldest first.
// A publication without comments yields an empty slice; a missing one
// fails with domain.ErrNotFound.
func (s *Service) ListByPublication(ctx context.Context, publicationID uuid.UUID) ([]*domain.Comment, error) {
	if err := s.requirePublication(ctx, publicationID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByPublication(ctx, publicationID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *Service) requirePublication(ctx context.Context, id uuid.UUID) error {
	exists, err := s.publications.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check publication: %w", err)
	}
	if !exists {
		return fmt.Errorf("publication %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
