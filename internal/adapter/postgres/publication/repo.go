// Package publication implements the Publication repository using PostgreSQL.
// Publications are stored as one base row in publications plus one row in the
// variant table that shares its id (routines, nutrition_plans,
// progress_reports, group_posts). Set-valued payload fields live in
// routine_exercises and progress_report_samples.
package publication

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

// Repo provides publication persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new publication repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

var selectColumns = []string{
	"p.id", "p.kind", "p.title", "p.body", "p.author_id", "p.verified", "p.created_at",
	"r.name", "r.duration_minutes", "r.frequency", "r.difficulty", "r.goal",
	"n.diet_type", "n.calorie_target", "n.goals", "n.restrictions",
	"pr.user_id", "pr.start_date", "pr.end_date", "pr.average_weight",
	"gp.group_id",
}

const insertPublicationSQL = `
INSERT INTO publications (id, kind, title, body, author_id, verified, created_at)
VALUES ($1, $2, $3, $4, $5, false, $6)`

const insertRoutineSQL = `
INSERT INTO routines (publication_id, name, duration_minutes, frequency, difficulty, goal)
VALUES ($1, $2, $3, $4, $5, $6)`

const insertNutritionPlanSQL = `
INSERT INTO nutrition_plans (publication_id, diet_type, calorie_target, goals, restrictions)
VALUES ($1, $2, $3, $4, $5)`

const insertProgressReportSQL = `
INSERT INTO progress_reports (publication_id, user_id, start_date, end_date, average_weight)
VALUES ($1, $2, $3, $4, $5)`

const insertGroupPostSQL = `
INSERT INTO group_posts (publication_id, group_id) VALUES ($1, $2)`

const linkExercisesSQL = `
INSERT INTO routine_exercises (routine_id, exercise_id)
SELECT $1, unnest($2::uuid[])
ON CONFLICT DO NOTHING`

const linkSamplesSQL = `
INSERT INTO progress_report_samples (report_id, sample_id)
SELECT $1, unnest($2::uuid[])
ON CONFLICT DO NOTHING`

const exerciseIDsByRoutinesSQL = `
SELECT routine_id, exercise_id FROM routine_exercises
WHERE routine_id = ANY($1::uuid[])
ORDER BY routine_id, assigned_at, exercise_id`

const sampleIDsByReportsSQL = `
SELECT ps.report_id, ps.sample_id FROM progress_report_samples ps
JOIN progress_samples s ON s.id = ps.sample_id
WHERE ps.report_id = ANY($1::uuid[])
ORDER BY ps.report_id, s.recorded_on, s.id`

const lockPublicationSQL = `
SELECT id, kind, title, body, author_id, verified, created_at
FROM publications WHERE id = $1
FOR UPDATE`

const publicationExistsSQL = `SELECT EXISTS(SELECT 1 FROM publications WHERE id = $1)`

// selectBuilder returns the polymorphic base query joined with every variant table.
func selectBuilder() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(selectColumns...).
		From("publications p").
		LeftJoin("routines r ON r.publication_id = p.id").
		LeftJoin("nutrition_plans n ON n.publication_id = p.id").
		LeftJoin("progress_reports pr ON pr.publication_id = p.id").
		LeftJoin("group_posts gp ON gp.publication_id = p.id")
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the base row, the variant row and any association rows.
// The caller is expected to run it inside a transaction.
func (r *Repo) Create(ctx context.Context, p *domain.Publication) (*domain.Publication, error) {
	if !p.IsConsistent() {
		return nil, fmt.Errorf("publication %s: payload does not match kind %s: %w", p.ID, p.Kind, domain.ErrValidation)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	if _, err := q.Exec(ctx, insertPublicationSQL, p.ID, string(p.Kind), p.Title, p.Body, p.AuthorID, p.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "publication", p.ID)
	}

	switch d := p.Details.(type) {
	case domain.RoutineDetails:
		if _, err := q.Exec(ctx, insertRoutineSQL, p.ID, d.Name, d.DurationMinutes, d.Frequency, d.Difficulty, d.Goal); err != nil {
			return nil, postgres.MapError(err, "routine", p.ID)
		}
		if len(d.ExerciseIDs) > 0 {
			if _, err := q.Exec(ctx, linkExercisesSQL, p.ID, d.ExerciseIDs); err != nil {
				return nil, postgres.MapError(err, "routine_exercise", p.ID)
			}
		}
	case domain.NutritionPlanDetails:
		if _, err := q.Exec(ctx, insertNutritionPlanSQL, p.ID, d.DietType, d.CalorieTarget, d.Goals, d.Restrictions); err != nil {
			return nil, postgres.MapError(err, "nutrition_plan", p.ID)
		}
	case domain.ProgressReportDetails:
		if _, err := q.Exec(ctx, insertProgressReportSQL, p.ID, d.UserID, d.StartDate, d.EndDate, d.AverageWeight); err != nil {
			return nil, postgres.MapError(err, "progress_report", p.ID)
		}
		if len(d.SampleIDs) > 0 {
			if _, err := q.Exec(ctx, linkSamplesSQL, p.ID, d.SampleIDs); err != nil {
				return nil, postgres.MapError(err, "progress_report_sample", p.ID)
			}
		}
	case domain.GroupPostDetails:
		if _, err := q.Exec(ctx, insertGroupPostSQL, p.ID, d.GroupID); err != nil {
			return nil, postgres.MapError(err, "group_post", p.ID)
		}
	}

	return r.GetByID(ctx, p.ID)
}

// AddExercises links exercises to a routine. Already linked exercises are
// skipped (ON CONFLICT DO NOTHING). Returns the number of new links.
func (r *Repo) AddExercises(ctx context.Context, routineID uuid.UUID, exerciseIDs []uuid.UUID) (int, error) {
	if len(exerciseIDs) == 0 {
		return 0, nil
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, linkExercisesSQL, routineID, exerciseIDs)
	if err != nil {
		return 0, postgres.MapError(err, "routine_exercise", routineID)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a publication with its variant payload.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Publication, error) {
	sql, args, err := selectBuilder().Where(squirrel.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build publication query: %w", err)
	}

	list, err := r.query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "publication", id)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("publication %s: %w", id, domain.ErrNotFound)
	}

	return list[0], nil
}

// LockForUpdate takes a row lock on the base publication row until the
// surrounding transaction ends and returns its base fields (Details is nil).
func (r *Repo) LockForUpdate(ctx context.Context, id uuid.UUID) (*domain.Publication, error) {
	var (
		p    domain.Publication
		kind string
	)

	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, lockPublicationSQL, id).
		Scan(&p.ID, &kind, &p.Title, &p.Body, &p.AuthorID, &p.Verified, &p.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "publication", id)
	}

	p.Kind = domain.PublicationKind(kind)
	return &p, nil
}

// Exists reports whether a publication with the given ID exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, publicationExistsSQL, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("publication exists: %w", err)
	}
	return exists, nil
}

// List returns publications matching the filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.PublicationFilter) ([]*domain.Publication, error) {
	b := selectBuilder().OrderBy("p.created_at DESC", "p.id DESC")

	if filter.Kind != nil {
		b = b.Where(squirrel.Eq{"p.kind": string(*filter.Kind)})
	}
	if filter.AuthorID != nil {
		b = b.Where(squirrel.Eq{"p.author_id": *filter.AuthorID})
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build publication list query: %w", err)
	}

	list, err := r.query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list publications: %w", err)
	}
	return list, nil
}

// ListByAuthor returns all publications of an author, newest first.
func (r *Repo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Publication, error) {
	return r.List(ctx, domain.PublicationFilter{AuthorID: &authorID})
}

// ListByGroup returns the group posts written into a group, newest first.
func (r *Repo) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*domain.Publication, error) {
	sql, args, err := selectBuilder().
		Where(squirrel.Eq{"gp.group_id": groupID}).
		OrderBy("p.created_at DESC", "p.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build group posts query: %w", err)
	}

	list, err := r.query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list group posts: %w", err)
	}
	return list, nil
}

// ListRoutinesByGoal returns routines whose goal contains substr,
// compared case-insensitively.
func (r *Repo) ListRoutinesByGoal(ctx context.Context, substr string) ([]*domain.Publication, error) {
	sql, args, err := selectBuilder().
		Where(squirrel.Eq{"p.kind": string(domain.PublicationKindRoutine)}).
		Where("strpos(lower(r.goal), lower(?)) > 0", substr).
		OrderBy("p.created_at DESC", "p.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build routine goal query: %w", err)
	}

	list, err := r.query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list routines by goal: %w", err)
	}
	return list, nil
}

// ---------------------------------------------------------------------------
// Query + association loading
// ---------------------------------------------------------------------------

// query runs a polymorphic select and fills set-valued payload fields.
func (r *Repo) query(ctx context.Context, sql string, args ...any) ([]*domain.Publication, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	list, err := scanPublications(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadAssociations(ctx, q, list); err != nil {
		return nil, err
	}
	return list, nil
}

// loadAssociations batch-loads exercise IDs for routines and sample IDs for
// progress reports in the given page.
func (r *Repo) loadAssociations(ctx context.Context, q postgres.Querier, list []*domain.Publication) error {
	var routineIDs, reportIDs []uuid.UUID
	for _, p := range list {
		switch p.Kind {
		case domain.PublicationKindRoutine:
			routineIDs = append(routineIDs, p.ID)
		case domain.PublicationKindProgressReport:
			reportIDs = append(reportIDs, p.ID)
		}
	}

	exercises, err := loadIDPairs(ctx, q, exerciseIDsByRoutinesSQL, routineIDs)
	if err != nil {
		return fmt.Errorf("load routine exercises: %w", err)
	}
	samples, err := loadIDPairs(ctx, q, sampleIDsByReportsSQL, reportIDs)
	if err != nil {
		return fmt.Errorf("load report samples: %w", err)
	}

	for _, p := range list {
		switch d := p.Details.(type) {
		case domain.RoutineDetails:
			d.ExerciseIDs = nonNil(exercises[p.ID])
			p.Details = d
		case domain.ProgressReportDetails:
			d.SampleIDs = nonNil(samples[p.ID])
			p.Details = d
		}
	}
	return nil
}

// loadIDPairs runs a (parent_id, child_id) query and groups children by parent.
func loadIDPairs(ctx context.Context, q postgres.Querier, sql string, parentIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	result := make(map[uuid.UUID][]uuid.UUID, len(parentIDs))
	if len(parentIDs) == 0 {
		return result, nil
	}

	rows, err := q.Query(ctx, sql, parentIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var parentID, childID uuid.UUID
		if err := rows.Scan(&parentID, &childID); err != nil {
			return nil, err
		}
		result[parentID] = append(result[parentID], childID)
	}
	return result, rows.Err()
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanPublications scans polymorphic rows into publications.
// Returns an empty slice (not nil) when there are no rows.
func scanPublications(rows pgx.Rows) ([]*domain.Publication, error) {
	defer rows.Close()

	result := []*domain.Publication{}
	for rows.Next() {
		p, err := scanPublication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// scanPublication scans one row of selectColumns and builds the payload
// selected by the kind column.
func scanPublication(rows pgx.Rows) (*domain.Publication, error) {
	var (
		p    domain.Publication
		kind string

		routineName, frequency, difficulty, goal pgtype.Text
		duration                                 pgtype.Int4

		dietType, goals, restrictions pgtype.Text
		calories                      pgtype.Int4

		reportUserID       pgtype.UUID
		startDate, endDate pgtype.Date
		averageWeight      pgtype.Float8

		groupID pgtype.UUID
	)

	err := rows.Scan(
		&p.ID, &kind, &p.Title, &p.Body, &p.AuthorID, &p.Verified, &p.CreatedAt,
		&routineName, &duration, &frequency, &difficulty, &goal,
		&dietType, &calories, &goals, &restrictions,
		&reportUserID, &startDate, &endDate, &averageWeight,
		&groupID,
	)
	if err != nil {
		return nil, err
	}

	p.Kind = domain.PublicationKind(kind)

	switch p.Kind {
	case domain.PublicationKindRoutine:
		p.Details = domain.RoutineDetails{
			Name:            routineName.String,
			DurationMinutes: int(duration.Int32),
			Frequency:       frequency.String,
			Difficulty:      difficulty.String,
			Goal:            goal.String,
		}
	case domain.PublicationKindNutritionPlan:
		p.Details = domain.NutritionPlanDetails{
			DietType:      dietType.String,
			CalorieTarget: int(calories.Int32),
			Goals:         goals.String,
			Restrictions:  restrictions.String,
		}
	case domain.PublicationKindProgressReport:
		p.Details = domain.ProgressReportDetails{
			UserID:        uuid.UUID(reportUserID.Bytes),
			StartDate:     startDate.Time,
			EndDate:       endDate.Time,
			AverageWeight: averageWeight.Float64,
		}
	case domain.PublicationKindGroupPost:
		p.Details = domain.GroupPostDetails{GroupID: uuid.UUID(groupID.Bytes)}
	default:
		return nil, fmt.Errorf("publication %s: unknown kind %q", p.ID, kind)
	}

	return &p, nil
}

func nonNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
