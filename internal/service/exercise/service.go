package exercise

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidafit-backend/internal/domain"
	"github.com/heartmarshall/vidafit-backend/internal/sanitize"
)

type exerciseRepo interface {
	Create(ctx context.Context, e *domain.Exercise) (*domain.Exercise, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error)
	ListByRoutine(ctx context.Context, routineID uuid.UUID) ([]*domain.Exercise, error)
}

type publicationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Publication, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the exercise catalog that routines reference.
type Service struct {
	exercises    exerciseRepo
	publications publicationRepo
	audit        auditLogger
	tx           txManager
	log          *slog.Logger
}

// NewService creates a new Exercise service.
func NewService(
	log *slog.Logger,
	exercises exerciseRepo,
	publications publicationRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		exercises:    exercises,
		publications: publications,
		audit:        audit,
		tx:           tx,
		log:          log.With("service", "exercise"),
	}
}

// CreateExerciseInput holds the parameters for adding a catalog exercise.
type CreateExerciseInput struct {
	Name        string
	Description string
	Sets        int
	Reps        int
	RestSeconds int
	WeightKg    *float64
	ImageURL    *string
}

// Validate checks all fields and collects all errors.
func (i CreateExerciseInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Sets <= 0 {
		errs = append(errs, domain.FieldError{Field: "sets", Message: "must be positive"})
	}
	if i.Reps <= 0 {
		errs = append(errs, domain.FieldError{Field: "reps", Message: "must be positive"})
	}
	if i.RestSeconds < 0 {
		errs = append(errs, domain.FieldError{Field: "rest_seconds", Message: "must not be negative"})
	}
	if i.WeightKg != nil && *i.WeightKg < 0 {
		errs = append(errs, domain.FieldError{Field: "weight_kg", Message: "must not be negative"})
	}
	if i.ImageURL != nil {
		if u, err := url.Parse(*i.ImageURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, domain.FieldError{Field: "image_url", Message: "must be an absolute http(s) URL"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Create adds an exercise to the catalog.
func (s *Service) Create(ctx context.Context, actor domain.Actor, input CreateExerciseInput) (*domain.Exercise, error) {
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

	var created *domain.Exercise
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.exercises.Create(txCtx, &domain.Exercise{
			Name:        name,
			Description: sanitize.Text(input.Description),
			Sets:        input.Sets,
			Reps:        input.Reps,
			RestSeconds: input.RestSeconds,
			WeightKg:    input.WeightKg,
			ImageURL:    input.ImageURL,
			CreatedBy:   actor.UserID,
		})
		if err != nil {
			return fmt.Errorf("create exercise: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeExercise,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name": map[string]any{"new": name},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "exercise created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("exercise_id", created.ID.String()),
	)

	return created, nil
}

// GetByID returns a catalog exercise.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	e, err := s.exercises.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return e, nil
}

// ListByRoutine returns the exercises assigned to a routine in assignment order.
// Fails with domain.ErrNotFound if the routine does not exist and with a
// validation error if the publication is not a routine.
func (s *Service) ListByRoutine(ctx context.Context, routineID uuid.UUID) ([]*domain.Exercise, error) {
	p, err := s.publications.GetByID(ctx, routineID)
	if err != nil {
		return nil, fmt.Errorf("get routine: %w", err)
	}
	if _, ok := p.AsRoutine(); !ok {
		return nil, domain.NewValidationError("routine_id", "publication is not a routine")
	}

	list, err := s.exercises.ListByRoutine(ctx, routineID)
	if err != nil {
		return nil, fmt.Errorf("list routine exercises: %w", err)
	}
	return list, nil
}
