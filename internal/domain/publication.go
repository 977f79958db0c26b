package domain

import (
	"time"

	"github.com/google/uuid"
)

// Publication is the common content entity. Kind selects which Details
// payload is present and never changes after creation.
type Publication struct {
	ID        uuid.UUID
	Kind      PublicationKind
	Title     string
	Body      string
	AuthorID  uuid.UUID
	Verified  bool
	CreatedAt time.Time
	Details   PublicationDetails
}

// PublicationDetails is the variant payload of a publication.
// Implementations live in this package only.
type PublicationDetails interface {
	Kind() PublicationKind
	sealed()
}

// RoutineDetails is the payload of a training routine.
type RoutineDetails struct {
	Name            string
	DurationMinutes int
	Frequency       string
	Difficulty      string
	Goal            string
	ExerciseIDs     []uuid.UUID
}

// NutritionPlanDetails is the payload of a nutrition plan.
type NutritionPlanDetails struct {
	DietType      string
	CalorieTarget int
	Goals         string
	Restrictions  string
}

// ProgressReportDetails is the payload of a progress report.
// AverageWeight is computed once from the samples in [StartDate, EndDate].
type ProgressReportDetails struct {
	UserID        uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	AverageWeight float64
	SampleIDs     []uuid.UUID
}

// GroupPostDetails is the payload of a post written into a group.
type GroupPostDetails struct {
	GroupID uuid.UUID
}

func (RoutineDetails) Kind() PublicationKind        { return PublicationKindRoutine }
func (NutritionPlanDetails) Kind() PublicationKind  { return PublicationKindNutritionPlan }
func (ProgressReportDetails) Kind() PublicationKind { return PublicationKindProgressReport }
func (GroupPostDetails) Kind() PublicationKind      { return PublicationKindGroupPost }

func (RoutineDetails) sealed()        {}
func (NutritionPlanDetails) sealed()  {}
func (ProgressReportDetails) sealed() {}
func (GroupPostDetails) sealed()      {}

// AsRoutine returns the routine payload if the publication is a routine.
func (p *Publication) AsRoutine() (RoutineDetails, bool) {
	d, ok := p.Details.(RoutineDetails)
	return d, ok && p.Kind == PublicationKindRoutine
}

// AsNutritionPlan returns the nutrition plan payload if present.
func (p *Publication) AsNutritionPlan() (NutritionPlanDetails, bool) {
	d, ok := p.Details.(NutritionPlanDetails)
	return d, ok && p.Kind == PublicationKindNutritionPlan
}

// AsProgressReport returns the progress report payload if present.
func (p *Publication) AsProgressReport() (ProgressReportDetails, bool) {
	d, ok := p.Details.(ProgressReportDetails)
	return d, ok && p.Kind == PublicationKindProgressReport
}

// AsGroupPost returns the group post payload if present.
func (p *Publication) AsGroupPost() (GroupPostDetails, bool) {
	d, ok := p.Details.(GroupPostDetails)
	return d, ok && p.Kind == PublicationKindGroupPost
}

// IsConsistent reports whether the payload matches the variant tag.
func (p *Publication) IsConsistent() bool {
	return p.Details != nil && p.Details.Kind() == p.Kind
}

// PublicationFilter narrows the publication feed.
type PublicationFilter struct {
	Kind     *PublicationKind
	AuthorID *uuid.UUID
	Limit    int
	Offset   int
}
