// Package group implements the Group repository using PostgreSQL.
// Membership is the group_members association table keyed by (group_id, user_id).
package group

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

// Repo provides group and membership persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new group repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// groupRow is the scan target for group queries.
type groupRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Type        string    `db:"type"`
	AdminID     uuid.UUID `db:"admin_id"`
	MemberCount int       `db:"member_count"`
	CreatedAt   time.Time `db:"created_at"`
}

type memberRow struct {
	GroupID  uuid.UUID `db:"group_id"`
	UserID   uuid.UUID `db:"user_id"`
	JoinedAt time.Time `db:"joined_at"`
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const groupSelect = `
SELECT g.id, g.name, g.description, g.type, g.admin_id, g.created_at,
       (SELECT count(*) FROM group_members m WHERE m.group_id = g.id)::int AS member_count
FROM groups g`

const getGroupByIDSQL = groupSelect + ` WHERE g.id = $1`

const lockGroupSQL = `
SELECT id, name, description, type, admin_id, created_at, 0 AS member_count
FROM groups WHERE id = $1
FOR UPDATE`

const listPublicGroupsSQL = groupSelect + ` WHERE g.type = 'PUBLIC' ORDER BY g.created_at DESC, g.id`

const listGroupsByMemberSQL = groupSelect + `
JOIN group_members gm ON gm.group_id = g.id
WHERE gm.user_id = $1
ORDER BY gm.joined_at DESC, g.id`

const (
	groupNameIndex  = "ux_groups_name"
	groupMemberPkey = "group_members_pkey"
)

const insertGroupSQL = `
INSERT INTO groups (id, name, description, type, admin_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const nameTakenSQL = `SELECT EXISTS(SELECT 1 FROM groups WHERE name = $1 AND id <> $2)`

const groupExistsSQL = `SELECT EXISTS(SELECT 1 FROM groups WHERE id = $1)`

const insertMemberSQL = `
INSERT INTO group_members (group_id, user_id, joined_at) VALUES ($1, $2, $3)`

const isMemberSQL = `SELECT EXISTS(SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2)`

const listMembersSQL = `
SELECT group_id, user_id, joined_at FROM group_members
WHERE group_id = $1
ORDER BY joined_at, user_id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a group with its current member count.
// Returns domain.ErrNotFound if the group does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	var row groupRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getGroupByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "group", id)
	}
	g := toDomainGroup(row)
	return &g, nil
}

// LockForUpdate takes a row lock on the group until the surrounding
// transaction ends. Concurrent membership changes of the same group queue
// behind it. MemberCount is not populated.
func (r *Repo) LockForUpdate(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	var row groupRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, lockGroupSQL, id); err != nil {
		return nil, postgres.MapError(err, "group", id)
	}
	g := toDomainGroup(row)
	return &g, nil
}

// Exists reports whether a group with the given ID exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, groupExistsSQL, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("group exists: %w", err)
	}
	return exists, nil
}

// NameTaken reports whether another group (not excludeID) already uses name.
func (r *Repo) NameTaken(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, nameTakenSQL, name, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("group name taken: %w", err)
	}
	return taken, nil
}

// ListPublic returns all PUBLIC groups, newest first.
func (r *Repo) ListPublic(ctx context.Context) ([]*domain.Group, error) {
	var rows []groupRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listPublicGroupsSQL); err != nil {
		return nil, fmt.Errorf("list public groups: %w", err)
	}
	return toDomainGroups(rows), nil
}

// ListByMember returns the groups a user belongs to, most recently joined first.
func (r *Repo) ListByMember(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error) {
	var rows []groupRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listGroupsByMemberSQL, userID); err != nil {
		return nil, fmt.Errorf("list groups by member: %w", err)
	}
	return toDomainGroups(rows), nil
}

// IsMember reports whether userID belongs to groupID.
func (r *Repo) IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	var member bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, isMemberSQL, groupID, userID).Scan(&member); err != nil {
		return false, fmt.Errorf("group is member: %w", err)
	}
	return member, nil
}

// ListMembers returns the member set of a group in join order.
func (r *Repo) ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.GroupMember, error) {
	var rows []memberRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listMembersSQL, groupID); err != nil {
		return nil, fmt.Errorf("list group members: %w", err)
	}

	members := make([]domain.GroupMember, len(rows))
	for i, row := range rows {
		members[i] = domain.GroupMember(row)
	}
	return members, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new group. The administrator membership is added
// separately with AddMember inside the same transaction.
// Returns domain.ErrConflict if the name is already used.
func (r *Repo) Create(ctx context.Context, g *domain.Group) (*domain.Group, error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertGroupSQL,
		g.ID, g.Name, g.Description, string(g.Type), g.AdminID, g.CreatedAt,
	)
	if postgres.IsUniqueViolation(err, groupNameIndex) {
		return nil, fmt.Errorf("group name %q: %w", g.Name, domain.ErrConflict)
	}
	if err != nil {
		return nil, postgres.MapError(err, "group", g.ID)
	}

	created := *g
	return &created, nil
}

// AddMember inserts a membership row.
// Returns domain.ErrConflict if the user is already a member and
// domain.ErrNotFound if the group or user does not exist.
func (r *Repo) AddMember(ctx context.Context, groupID, userID uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertMemberSQL,
		groupID, userID, time.Now().UTC().Truncate(time.Microsecond),
	)
	if postgres.IsUniqueViolation(err, groupMemberPkey) {
		return fmt.Errorf("user %s already in group %s: %w", userID, groupID, domain.ErrConflict)
	}
	if err != nil {
		return postgres.MapError(err, "group_member", groupID)
	}
	return nil
}

// Update applies a partial update to name, description and type.
// Returns domain.ErrNotFound if the group does not exist and
// domain.ErrConflict if the new name is used by another group.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.GroupUpdateParams) (*domain.Group, error) {
	set := map[string]any{}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.Description != nil {
		set["description"] = *params.Description
	}
	if params.Type != nil {
		set["type"] = string(*params.Type)
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	sql, args, err := postgres.Builder().
		Update("groups").
		SetMap(set).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build group update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if postgres.IsUniqueViolation(err, groupNameIndex) {
		return nil, fmt.Errorf("group name %q: %w", *params.Name, domain.ErrConflict)
	}
	if err != nil {
		return nil, postgres.MapError(err, "group", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("group %s: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomainGroup(row groupRow) domain.Group {
	return domain.Group{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Type:        domain.GroupType(row.Type),
		AdminID:     row.AdminID,
		MemberCount: row.MemberCount,
		CreatedAt:   row.CreatedAt,
	}
}

// toDomainGroups returns an empty slice (not nil) for no rows.
func toDomainGroups(rows []groupRow) []*domain.Group {
	groups := make([]*domain.Group, len(rows))
	for i, row := range rows {
		g := toDomainGroup(row)
		groups[i] = &g
	}
	return groups
}
