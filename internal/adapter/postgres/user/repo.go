// Package user implements access to users and specialist profiles using PostgreSQL.
// Users are provisioned by the identity collaborator; only roles and
// specialist profiles are written here, by operator tooling.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

// Repo provides user lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const userColumns = `id, email, name, role, created_at`

const getUserByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getUserByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

const userExistsSQL = `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`

const getSpecialistProfileSQL = `
SELECT sp.user_id, sp.specialty, sp.certificate_url, sp.bio
FROM specialist_profiles sp
JOIN users u ON u.id = sp.user_id
WHERE sp.user_id = $1 AND u.role = 'SPECIALIST'`

const setUserRoleSQL = `UPDATE users SET role = $2 WHERE id = $1`

const upsertSpecialistProfileSQL = `
INSERT INTO specialist_profiles (user_id, specialty, certificate_url, bio)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE
SET specialty = EXCLUDED.specialty,
    certificate_url = EXCLUDED.certificate_url,
    bio = EXCLUDED.bio`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getUserByIDSQL, id)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByEmail returns a user by email address (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getUserByEmailSQL, email)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return &u, nil
}

// Exists reports whether a user with the given ID exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, userExistsSQL, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}
	return exists, nil
}

// GetSpecialistProfile returns the profile of a SPECIALIST user.
// Returns domain.ErrNotFound if the user has no profile or is not a specialist.
func (r *Repo) GetSpecialistProfile(ctx context.Context, userID uuid.UUID) (*domain.SpecialistProfile, error) {
	var p domain.SpecialistProfile
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getSpecialistProfileSQL, userID).
		Scan(&p.UserID, &p.Specialty, &p.CertificateURL, &p.Bio)
	if err != nil {
		return nil, postgres.MapError(err, "specialist_profile", userID)
	}
	return &p, nil
}

// SetRole assigns role to the user.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) error {
	if !role.IsValid() {
		return domain.NewValidationError("role", "unknown role")
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, setUserRoleSQL, id, string(role))
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// UpsertSpecialistProfile creates or replaces the profile of a user.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) UpsertSpecialistProfile(ctx context.Context, p domain.SpecialistProfile) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, upsertSpecialistProfileSQL,
		p.UserID, p.Specialty, p.CertificateURL, p.Bio,
	)
	if err != nil {
		return postgres.MapError(err, "specialist_profile", p.UserID)
	}
	return nil
}

// scanUser scans a single users row.
func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u         domain.User
		role      string
		createdAt time.Time
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &role, &createdAt); err != nil {
		return domain.User{}, err
	}
	u.Role = domain.UserRole(role)
	u.CreatedAt = createdAt
	return u, nil
}
