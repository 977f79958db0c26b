// Package exercise implements the exercise catalog repository using PostgreSQL.
package exercise

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

// Repo provides exercise persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new exercise repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type exerciseRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Sets        int       `db:"sets"`
	Reps        int       `db:"reps"`
	RestSeconds int       `db:"rest_seconds"`
	WeightKg    *float64  `db:"weight_kg"`
	ImageURL    *string   `db:"image_url"`
	CreatedBy   uuid.UUID `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
}

const exerciseColumns = `e.id, e.name, e.description, e.sets, e.reps, e.rest_seconds, e.weight_kg, e.image_url, e.created_by, e.created_at`

const insertExerciseSQL = `
INSERT INTO exercises (id, name, description, sets, reps, rest_seconds, weight_kg, image_url, created_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const getExerciseSQL = `SELECT ` + exerciseColumns + ` FROM exercises e WHERE e.id = $1`

const listByRoutineSQL = `
SELECT ` + exerciseColumns + `
FROM routine_exercises re
JOIN exercises e ON e.id = re.exercise_id
WHERE re.routine_id = $1
ORDER BY re.assigned_at, e.id`

const existingIDsSQL = `SELECT id FROM exercises WHERE id = ANY($1::uuid[])`

// Create inserts a new exercise.
func (r *Repo) Create(ctx context.Context, e *domain.Exercise) (*domain.Exercise, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertExerciseSQL,
		e.ID, e.Name, e.Description, e.Sets, e.Reps, e.RestSeconds, e.WeightKg, e.ImageURL, e.CreatedBy, e.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "exercise", e.ID)
	}

	created := *e
	return &created, nil
}

// GetByID returns an exercise by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	var row exerciseRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getExerciseSQL, id); err != nil {
		return nil, postgres.MapError(err, "exercise", id)
	}
	e := domain.Exercise(row)
	return &e, nil
}

// ListByRoutine returns the exercises assigned to a routine in assignment order.
func (r *Repo) ListByRoutine(ctx context.Context, routineID uuid.UUID) ([]*domain.Exercise, error) {
	var rows []exerciseRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByRoutineSQL, routineID); err != nil {
		return nil, fmt.Errorf("list exercises by routine: %w", err)
	}

	result := make([]*domain.Exercise, len(rows))
	for i, row := range rows {
		e := domain.Exercise(row)
		result[i] = &e
	}
	return result, nil
}

// ExistByIDs returns which of the given IDs exist in the catalog.
func (r *Repo) ExistByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	result := make(map[uuid.UUID]bool, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var found []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &found, existingIDsSQL, ids); err != nil {
		return nil, fmt.Errorf("exercises exist by ids: %w", err)
	}
	for _, id := range found {
		result[id] = true
	}
	return result, nil
}
