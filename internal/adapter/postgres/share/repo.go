// Package share implements the SharedPost repository using PostgreSQL.
// Listings are projections joined at read time, so they always reflect the
// current title, body and author of the shared publication.
package share

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

// Repo provides shared post persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new share repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type viewRow struct {
	ShareID          uuid.UUID `db:"share_id"`
	SharedAt         time.Time `db:"shared_at"`
	GroupID          uuid.UUID `db:"group_id"`
	GroupName        string    `db:"group_name"`
	PublicationID    uuid.UUID `db:"publication_id"`
	PublicationKind  string    `db:"publication_kind"`
	PublicationTitle string    `db:"publication_title"`
	PublicationBody  string    `db:"publication_body"`
	AuthorID         uuid.UUID `db:"author_id"`
	AuthorName       string    `db:"author_name"`
}

const insertShareSQL = `
INSERT INTO shared_posts (id, publication_id, group_id, shared_by, shared_at)
VALUES ($1, $2, $3, $4, $5)`

const listByGroupSQL = `
SELECT s.id AS share_id, s.shared_at,
       g.id AS group_id, g.name AS group_name,
       p.id AS publication_id, p.kind AS publication_kind,
       p.title AS publication_title, p.body AS publication_body,
       u.id AS author_id, u.name AS author_name
FROM shared_posts s
JOIN groups g ON g.id = s.group_id
JOIN publications p ON p.id = s.publication_id
JOIN users u ON u.id = p.author_id
WHERE s.group_id = $1
ORDER BY s.shared_at DESC, s.id`

const countSharesSQL = `SELECT count(*) FROM shared_posts WHERE publication_id = $1 AND group_id = $2`

// Create inserts a shared post. Repeated shares of the same pair are kept.
// Returns domain.ErrNotFound if the publication, group or sharer does not exist.
func (r *Repo) Create(ctx context.Context, s *domain.SharedPost) (*domain.SharedPost, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.SharedAt.IsZero() {
		s.SharedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertShareSQL,
		s.ID, s.PublicationID, s.GroupID, s.SharedBy, s.SharedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "shared_post", s.ID)
	}

	created := *s
	return &created, nil
}

// ListByGroup returns the shares of a group as read-time projections, newest first.
func (r *Repo) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.SharedPostView, error) {
	var rows []viewRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByGroupSQL, groupID); err != nil {
		return nil, fmt.Errorf("list shared posts: %w", err)
	}

	views := make([]domain.SharedPostView, len(rows))
	for i, row := range rows {
		views[i] = domain.SharedPostView{
			ShareID:          row.ShareID,
			SharedAt:         row.SharedAt,
			GroupID:          row.GroupID,
			GroupName:        row.GroupName,
			PublicationID:    row.PublicationID,
			PublicationKind:  domain.PublicationKind(row.PublicationKind),
			PublicationTitle: row.PublicationTitle,
			PublicationBody:  row.PublicationBody,
			AuthorID:         row.AuthorID,
			AuthorName:       row.AuthorName,
		}
	}
	return views, nil
}

// Count returns how many times a publication was shared into a group.
func (r *Repo) Count(ctx context.Context, publicationID, groupID uuid.UUID) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countSharesSQL, publicationID, groupID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count shared posts: %w", err)
	}
	return n, nil
}
