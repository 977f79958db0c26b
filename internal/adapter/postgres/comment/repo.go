// Package comment implements the Comment repository using PostgreSQL.
// Comments are append-only: there is no update or delete.
package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type commentRow struct {
	ID            uuid.UUID `db:"id"`
	PublicationID uuid.UUID `db:"publication_id"`
	AuthorID      uuid.UUID `db:"author_id"`
	Body          string    `db:"body"`
	CreatedAt     time.Time `db:"created_at"`
}

const insertCommentSQL = `
INSERT INTO comments (id, publication_id, author_id, body, created_at)
VALUES ($1, $2, $3, $4, $5)`

// seq breaks ties between comments created in the same microsecond.
const listByPublicationSQL = `
SELECT id, publication_id, author_id, body, created_at
FROM comments
WHERE publication_id = $1
ORDER BY created_at, seq`

// Create inserts a new comment.
// Returns domain.ErrNotFound if the publication or author does not exist.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertCommentSQL,
		c.ID, c.PublicationID, c.AuthorID, c.Body, c.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "comment", c.ID)
	}

	created := *c
	return &created, nil
}

// ListByPublication returns the comments of a publication, oldest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByPublication(ctx context.Context, publicationID uuid.UUID) ([]*domain.Comment, error) {
	var rows []commentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByPublicationSQL, publicationID); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	comments := make([]*domain.Comment, len(rows))
	for i, row := range rows {
		c := domain.Comment(row)
		comments[i] = &c
	}
	return comments, nil
}
