package publication

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidafit-backend/internal/domain"
	"github.com/heartmarshall/vidafit-backend/internal/sanitize"
)

// Create stores a new publication of input.Kind authored by the actor.
// Variant rules:
//   - ROUTINE: every exercise id must exist (domain.ErrNotFound).
//   - PROGRESS_REPORT: samples of the owner in [StartDate, EndDate] are
//     averaged; another user's samples are domain.ErrForbidden and an empty
//     range is a validation error.
//   - GROUP_POST: the group must exist (domain.ErrNotFound).
func (s *Service) Create(ctx context.Context, actor domain.Actor, input CreateInput) (*domain.Publication, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	title := sanitize.Text(input.Title)
	body := sanitize.Text(input.Body)
	if err := s.checkLimits(title, body); err != nil {
		return nil, err
	}

	var created *domain.Publication
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		details, err := s.buildDetails(txCtx, actor, input)
		if err != nil {
			return err
		}

		created, err = s.publications.Create(txCtx, &domain.Publication{
			Kind:     input.Kind,
			Title:    title,
			Body:     body,
			AuthorID: actor.UserID,
			Details:  details,
		})
		if err != nil {
			return fmt.Errorf("create publication: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventPublicationCreated, created.ID, actor.UserID, map[string]string{
		"kind": created.Kind.String(),
	}))

	s.log.InfoContext(ctx, "publication created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("publication_id", created.ID.String()),
		slog.String("kind", created.Kind.String()),
	)

	return created, nil
}

func (s *Service) checkLimits(title, body string) error {
	var errs []domain.FieldError
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > s.cfg.MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", s.cfg.MaxTitleLength)})
	}
	if len(body) > s.cfg.MaxBodyLength {
		errs = append(errs, domain.FieldError{Field: "body", Message: fmt.Sprintf("max %d characters", s.cfg.MaxBodyLength)})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// buildDetails resolves the variant payload. It reads the store, so it runs
// inside the creating transaction.
func (s *Service) buildDetails(ctx context.Context, actor domain.Actor, input CreateInput) (domain.PublicationDetails, error) {
	switch input.Kind {
	case domain.PublicationKindRoutine:
		r := input.Routine
		ids := uniqueIDs(r.ExerciseIDs)
		if err := s.requireExercises(ctx, ids); err != nil {
			return nil, err
		}
		return domain.RoutineDetails{
			Name:            sanitize.Text(r.Name),
			DurationMinutes: r.DurationMinutes,
			Frequency:       sanitize.Text(r.Frequency),
			Difficulty:      sanitize.Text(r.Difficulty),
			Goal:            sanitize.Text(r.Goal),
			ExerciseIDs:     ids,
		}, nil

	case domain.PublicationKindNutritionPlan:
		n := input.NutritionPlan
		return domain.NutritionPlanDetails{
			DietType:      sanitize.Text(n.DietType),
			CalorieTarget: n.CalorieTarget,
			Goals:         sanitize.Text(n.Goals),
			Restrictions:  sanitize.Text(n.Restrictions),
		}, nil

	case domain.PublicationKindProgressReport:
		return s.progressReport(ctx, actor, *input.ProgressReport)

	case domain.PublicationKindGroupPost:
		groupID := input.GroupPost.GroupID
		exists, err := s.groups.Exists(ctx, groupID)
		if err != nil {
			return nil, fmt.Errorf("check group: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("group %s: %w", groupID, domain.ErrNotFound)
		}
		return domain.GroupPostDetails{GroupID: groupID}, nil
	}

	return nil, domain.NewValidationError("kind", "unknown variant")
}

func (s *Service) progressReport(ctx context.Context, actor domain.Actor, in ProgressReportInput) (domain.PublicationDetails, error) {
	owner := in.UserID
	if owner == uuid.Nil {
		owner = actor.UserID
	}
	if owner != actor.UserID {
		return nil, fmt.Errorf("progress samples of user %s: %w", owner, domain.ErrForbidden)
	}

	start, end := domain.DateOnly(in.StartDate), domain.DateOnly(in.EndDate)
	samples, err := s.progress.ListInRange(ctx, owner, start, end)
	if err != nil {
		return nil, fmt.Errorf("list progress samples: %w", err)
	}

	avg, ok := domain.AverageWeight(samples)
	if !ok {
		return nil, domain.NewValidationError("progress_report", "no progress samples in range")
	}

	sampleIDs := make([]uuid.UUID, len(samples))
	for i, sm := range samples {
		sampleIDs[i] = sm.ID
	}

	return domain.ProgressReportDetails{
		UserID:        owner,
		StartDate:     start,
		EndDate:       end,
		AverageWeight: avg,
		SampleIDs:     sampleIDs,
	}, nil
}

// requireExercises fails with domain.ErrNotFound naming the first id that
// is not in the catalog.
func (s *Service) requireExercises(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := s.exercises.ExistByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("check exercises: %w", err)
	}
	for _, id := range ids {
		if !found[id] {
			return fmt.Errorf("exercise %s: %w", id, domain.ErrNotFound)
		}
	}
	return nil
}
