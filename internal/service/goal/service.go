package goal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidafit-backend/internal/domain"
	"github.com/heartmarshall/vidafit-backend/internal/sanitize"
)

const maxDescriptionLength = 500

type goalRepo interface {
	Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Goal, error)
	MarkAchieved(ctx context.Context, userID, goalID uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventSink interface {
	Publish(ctx context.Context, ev domain.Event)
}

// Service manages personal fitness goals.
type Service struct {
	goals  goalRepo
	audit  auditLogger
	tx     txManager
	events eventSink
	log    *slog.Logger
}

// NewService creates a new Goal service.
func NewService(log *slog.Logger, goals goalRepo, audit auditLogger, tx txManager, events eventSink) *Service {
	return &Service{
		goals:  goals,
		audit:  audit,
		tx:     tx,
		events: events,
		log:    log.With("service", "goal"),
	}
}

// CreateGoalInput holds the parameters for a new goal.
type CreateGoalInput struct {
	Description string
	StartDate   time.Time
	EndDate     time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateGoalInput) Validate() error {
	var errs []domain.FieldError

	desc := strings.TrimSpace(i.Description)
	if desc == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	} else if len(desc) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}
	if i.StartDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "required"})
	}
	if i.EndDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "required"})
	}
	if !i.StartDate.IsZero() && !i.EndDate.IsZero() && domain.DateOnly(i.StartDate).After(domain.DateOnly(i.EndDate)) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Create stores a goal owned by the actor.
func (s *Service) Create(ctx context.Context, actor domain.Actor, input CreateGoalInput) (*domain.Goal, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	desc := sanitize.Text(input.Description)
	if desc == "" {
		return nil, domain.NewValidationError("description", "required")
	}

	var created *domain.Goal
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.goals.Create(txCtx, &domain.Goal{
			UserID:      actor.UserID,
			Description: desc,
			StartDate:   domain.DateOnly(input.StartDate),
			EndDate:     domain.DateOnly(input.EndDate),
		})
		if err != nil {
			return fmt.Errorf("create goal: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeGoal,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"description": map[string]any{"new": desc},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventGoalCreated, created.ID, actor.UserID, map[string]string{
		"end_date": created.EndDate.Format(time.DateOnly),
	}))

	s.log.InfoContext(ctx, "goal created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("goal_id", created.ID.String()),
	)

	return created, nil
}

// List returns the actor's goals.
func (s *Service) List(ctx context.Context, actor domain.Actor) ([]*domain.Goal, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	goals, err := s.goals.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

// MarkAchieved flags one of the actor's goals as achieved.
// Fails with domain.ErrForbidden if the goal belongs to someone else.
func (s *Service) MarkAchieved(ctx context.Context, actor domain.Actor, goalID uuid.UUID) error {
	if actor.IsZero() {
		return domain.ErrUnauthorized
	}
	if goalID == uuid.Nil {
		return domain.NewValidationError("goal_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		g, err := s.goals.GetByID(txCtx, goalID)
		if err != nil {
			return fmt.Errorf("get goal: %w", err)
		}
		if g.UserID != actor.UserID {
			return fmt.Errorf("goal %s: %w", goalID, domain.ErrForbidden)
		}
		if g.Achieved {
			return nil
		}

		if err := s.goals.MarkAchieved(txCtx, actor.UserID, goalID); err != nil {
			return fmt.Errorf("mark goal achieved: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.UserID,
			EntityType: domain.EntityTypeGoal,
			EntityID:   &goalID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"achieved": map[string]any{"old": false, "new": true},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "goal achieved",
		slog.String("user_id", actor.UserID.String()),
		slog.String("goal_id", goalID.String()),
	)
	return nil
}
