package publication

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

// CreateInput holds the parameters for creating a publication.
// Exactly the payload selected by Kind must be set.
type CreateInput struct {
	Kind  domain.PublicationKind
	Title string
	Body  string

	Routine        *RoutineInput
	NutritionPlan  *NutritionPlanInput
	ProgressReport *ProgressReportInput
	GroupPost      *GroupPostInput
}

// RoutineInput is the payload of a ROUTINE publication.
type RoutineInput struct {
	Name            string
	DurationMinutes int
	Frequency       string
	Difficulty      string
	Goal            string
	ExerciseIDs     []uuid.UUID
}

// NutritionPlanInput is the payload of a NUTRITION_PLAN publication.
type NutritionPlanInput struct {
	DietType      string
	CalorieTarget int
	Goals         string
	Restrictions  string
}

// ProgressReportInput is the payload of a PROGRESS_REPORT publication.
// A nil UserID means the actor's own samples.
type ProgressReportInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GroupPostInput is the payload of a GROUP_POST publication.
type GroupPostInput struct {
	GroupID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown variant"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}

	present := i.payloadKinds()
	switch {
	case len(present) == 0:
		errs = append(errs, domain.FieldError{Field: "details", Message: "payload required"})
	case len(present) > 1:
		errs = append(errs, domain.FieldError{Field: "details", Message: "exactly one payload allowed"})
	case i.Kind.IsValid() && present[0] != i.Kind:
		errs = append(errs, domain.FieldError{Field: "details", Message: "payload does not match kind"})
	}

	if i.Routine != nil {
		if strings.TrimSpace(i.Routine.Name) == "" {
			errs = append(errs, domain.FieldError{Field: "routine.name", Message: "required"})
		}
		if i.Routine.DurationMinutes <= 0 {
			errs = append(errs, domain.FieldError{Field: "routine.duration_minutes", Message: "must be positive"})
		}
		for _, id := range i.Routine.ExerciseIDs {
			if id == uuid.Nil {
				errs = append(errs, domain.FieldError{Field: "routine.exercise_ids", Message: "must not contain empty ids"})
				break
			}
		}
	}
	if i.NutritionPlan != nil && i.NutritionPlan.CalorieTarget <= 0 {
		errs = append(errs, domain.FieldError{Field: "nutrition_plan.calorie_target", Message: "must be positive"})
	}
	if i.ProgressReport != nil {
		r := i.ProgressReport
		if r.StartDate.IsZero() {
			errs = append(errs, domain.FieldError{Field: "progress_report.start_date", Message: "required"})
		}
		if r.EndDate.IsZero() {
			errs = append(errs, domain.FieldError{Field: "progress_report.end_date", Message: "required"})
		}
		if !r.StartDate.IsZero() && !r.EndDate.IsZero() && domain.DateOnly(r.StartDate).After(domain.DateOnly(r.EndDate)) {
			errs = append(errs, domain.FieldError{Field: "progress_report.end_date", Message: "must not be before start_date"})
		}
	}
	if i.GroupPost != nil && i.GroupPost.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_post.group_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateInput) payloadKinds() []domain.PublicationKind {
	var kinds []domain.PublicationKind
	if i.Routine != nil {
		kinds = append(kinds, domain.PublicationKindRoutine)
	}
	if i.NutritionPlan != nil {
		kinds = append(kinds, domain.PublicationKindNutritionPlan)
	}
	if i.ProgressReport != nil {
		kinds = append(kinds, domain.PublicationKindProgressReport)
	}
	if i.GroupPost != nil {
		kinds = append(kinds, domain.PublicationKindGroupPost)
	}
	return kinds
}

// ListInput holds feed parameters. A zero Limit selects the default page size.
type ListInput struct {
	Kind   *domain.PublicationKind
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Kind != nil && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown variant"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// uniqueIDs returns ids without duplicates, keeping the first occurrence.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
