// Package progress implements the progress sample repository using PostgreSQL.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

// Repo provides progress sample persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new progress sample repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type sampleRow struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	WeightKg   float64   `db:"weight_kg"`
	RecordedOn time.Time `db:"recorded_on"`
	CreatedAt  time.Time `db:"created_at"`
}

const insertSampleSQL = `
INSERT INTO progress_samples (id, user_id, weight_kg, recorded_on, created_at)
VALUES ($1, $2, $3, $4, $5)`

const listSamplesSQL = `
SELECT id, user_id, weight_kg, recorded_on, created_at
FROM progress_samples
WHERE user_id = $1
ORDER BY recorded_on DESC, created_at DESC`

// Both bounds are inclusive.
const listSamplesInRangeSQL = `
SELECT id, user_id, weight_kg, recorded_on, created_at
FROM progress_samples
WHERE user_id = $1 AND recorded_on BETWEEN $2 AND $3
ORDER BY recorded_on, id`

// Create inserts a new progress sample.
func (r *Repo) Create(ctx context.Context, s *domain.ProgressSample) (*domain.ProgressSample, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	s.RecordedOn = domain.DateOnly(s.RecordedOn)

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSampleSQL,
		s.ID, s.UserID, s.WeightKg, s.RecordedOn, s.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "progress_sample", s.ID)
	}

	created := *s
	return &created, nil
}

// ListByUser returns all samples of a user, most recent first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressSample, error) {
	return r.selectSamples(ctx, listSamplesSQL, userID)
}

// ListInRange returns the samples of a user recorded within [from, to].
func (r *Repo) ListInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.ProgressSample, error) {
	return r.selectSamples(ctx, listSamplesInRangeSQL, userID, domain.DateOnly(from), domain.DateOnly(to))
}

func (r *Repo) selectSamples(ctx context.Context, sql string, args ...any) ([]domain.ProgressSample, error) {
	var rows []sampleRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list progress samples: %w", err)
	}

	samples := make([]domain.ProgressSample, len(rows))
	for i, row := range rows {
		samples[i] = domain.ProgressSample(row)
	}
	return samples, nil
}
