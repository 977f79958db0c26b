package publication

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

// AssignExercises adds exercises to a routine's exercise set. Already
// assigned exercises are skipped. Only the routine's author may assign.
// Returns the refreshed routine.
func (s *Service) AssignExercises(ctx context.Context, actor domain.Actor, routineID uuid.UUID, exerciseIDs []uuid.UUID) (*domain.Publication, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthorized
	}

	var errs []domain.FieldError
	if routineID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "routine_id", Message: "required"})
	}
	if len(exerciseIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "exercise_ids", Message: "at least one exercise required"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	ids := uniqueIDs(exerciseIDs)

	var (
		refreshed *domain.Publication
		added     int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		routine, err := s.publications.LockForUpdate(txCtx, routineID)
		if err != nil {
			return fmt.Errorf("lock routine: %w", err)
		}
		if routine.Kind != domain.PublicationKindRoutine {
			return domain.NewValidationError("routine_id", "publication is not a routine")
		}
		if routine.AuthorID != actor.UserID {
			return fmt.Errorf("assign exercises to %s: %w", routineID, domain.ErrForbidden)
		}

		if err := s.requireExercises(txCtx, ids); err != nil {
			return err
		}

		added, err = s.publications.AddExercises(txCtx, routineID, ids)
		if err != nil {
			return fmt.Errorf("add exercises: %w", err)
		}

		if added > 0 {
			assigned := make([]string, len(ids))
			for i, id := range ids {
				assigned[i] = id.String()
			}
			if err := s.audit.Log(txCtx, domain.AuditRecord{
				UserID:     actor.UserID,
				EntityType: domain.EntityTypePublication,
				EntityID:   &routineID,
				Action:     domain.AuditActionAssign,
				Changes: map[string]any{
					"exercises": map[string]any{"new": assigned},
				},
			}); err != nil {
				return fmt.Errorf("audit log: %w", err)
			}
		}

		refreshed, err = s.publications.GetByID(txCtx, routineID)
		if err != nil {
			return fmt.Errorf("reload routine: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "routine exercises assigned",
		slog.String("user_id", actor.UserID.String()),
		slog.String("routine_id", routineID.String()),
		slog.Int("added", added),
	)

	return refreshed, nil
}
