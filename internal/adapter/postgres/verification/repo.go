// Package verification implements the Verification repository using PostgreSQL.
package verification

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

// Repo provides verification persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new verification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type verificationRow struct {
	ID            uuid.UUID `db:"id"`
	PublicationID uuid.UUID `db:"publication_id"`
	SpecialistID  uuid.UUID `db:"specialist_id"`
	Outcome       bool      `db:"outcome"`
	Comment       string    `db:"comment"`
	VerifiedAt    time.Time `db:"verified_at"`
}

const insertVerificationSQL = `
INSERT INTO verifications (id, publication_id, specialist_id, outcome, comment, verified_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const listByPublicationSQL = `
SELECT id, publication_id, specialist_id, outcome, comment, verified_at
FROM verifications
WHERE publication_id = $1
ORDER BY verified_at, id`

// Create inserts a verification record. It never touches publications.verified.
func (r *Repo) Create(ctx context.Context, v *domain.Verification) (*domain.Verification, error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.VerifiedAt.IsZero() {
		v.VerifiedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertVerificationSQL,
		v.ID, v.PublicationID, v.SpecialistID, v.Outcome, v.Comment, v.VerifiedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "verification", v.ID)
	}

	created := *v
	return &created, nil
}

// ListByPublication returns the verification history of a publication, oldest first.
func (r *Repo) ListByPublication(ctx context.Context, publicationID uuid.UUID) ([]*domain.Verification, error) {
	var rows []verificationRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByPublicationSQL, publicationID); err != nil {
		return nil, fmt.Errorf("list verifications: %w", err)
	}

	result := make([]*domain.Verification, len(rows))
	for i, row := range rows {
		result[i] = &domain.Verification{
			ID:            row.ID,
			PublicationID: row.PublicationID,
			SpecialistID:  row.SpecialistID,
			Outcome:       row.Outcome,
			Comment:       row.Comment,
			VerifiedAt:    row.VerifiedAt,
		}
	}
	return result, nil
}
