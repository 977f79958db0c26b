// Package goal implements the personal goal repository using PostgreSQL.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

// Repo provides goal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new goal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type goalRow struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Description string    `db:"description"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	Achieved    bool      `db:"achieved"`
	CreatedAt   time.Time `db:"created_at"`
}

const goalColumns = `id, user_id, description, start_date, end_date, achieved, created_at`

const insertGoalSQL = `
INSERT INTO goals (id, user_id, description, start_date, end_date, achieved, created_at)
VALUES ($1, $2, $3, $4, $5, false, $6)`

const getGoalSQL = `SELECT ` + goalColumns + ` FROM goals WHERE id = $1`

const listGoalsSQL = `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY start_date DESC, created_at DESC`

const markAchievedSQL = `UPDATE goals SET achieved = true WHERE id = $1 AND user_id = $2`

// Create inserts a new goal.
func (r *Repo) Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertGoalSQL,
		g.ID, g.UserID, g.Description, domain.DateOnly(g.StartDate), domain.DateOnly(g.EndDate), g.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "goal", g.ID)
	}

	return r.GetByID(ctx, g.ID)
}

// GetByID returns a goal by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	var row goalRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getGoalSQL, id); err != nil {
		return nil, postgres.MapError(err, "goal", id)
	}
	g := domain.Goal(row)
	return &g, nil
}

// ListByUser returns the goals of a user, latest start date first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Goal, error) {
	var rows []goalRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listGoalsSQL, userID); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	goals := make([]*domain.Goal, len(rows))
	for i, row := range rows {
		g := domain.Goal(row)
		goals[i] = &g
	}
	return goals, nil
}

// MarkAchieved flags a goal owned by userID as achieved.
// Returns domain.ErrNotFound if no such goal belongs to the user.
func (r *Repo) MarkAchieved(ctx context.Context, userID, goalID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, markAchievedSQL, goalID, userID)
	if err != nil {
		return postgres.MapError(err, "goal", goalID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("goal %s: %w", goalID, domain.ErrNotFound)
	}
	return nil
}
