package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidafit-backend/internal/domain"
	"github.com/heartmarshall/vidafit-backend/pkg/ctxutil"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Resolver turns a bearer token into a domain.Actor.
type Resolver struct {
	log      *slog.Logger
	verifier *TokenVerifier
	users    userRepo
}

// NewResolver creates a Resolver.
func NewResolver(log *slog.Logger, verifier *TokenVerifier, users userRepo) *Resolver {
	return &Resolver{
		log:      log.With("component", "auth_resolver"),
		verifier: verifier,
		users:    users,
	}
}

// Resolve validates the token and loads the user's current role and email.
// Any failure to authenticate yields domain.ErrUnauthorized.
func (r *Resolver) Resolve(ctx context.Context, bearerToken string) (domain.Actor, error) {
	token := strings.TrimSpace(strings.TrimPrefix(bearerToken, "Bearer "))

	userID, err := r.verifier.Verify(token)
	if err != nil {
		r.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return domain.Actor{}, fmt.Errorf("resolve actor: %w", domain.ErrUnauthorized)
	}

	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Actor{}, fmt.Errorf("resolve actor: %w", domain.ErrUnauthorized)
		}
		return domain.Actor{}, fmt.Errorf("resolve actor: %w", err)
	}

	return domain.Actor{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
	}, nil
}

// Attach resolves the token and returns ctx tagged with the actor's ID so
// that log records written on behalf of the request carry it.
func (r *Resolver) Attach(ctx context.Context, bearerToken string) (context.Context, domain.Actor, error) {
	actor, err := r.Resolve(ctx, bearerToken)
	if err != nil {
		return ctx, domain.Actor{}, err
	}
	return ctxutil.WithActorID(ctx, actor.UserID), actor, nil
}
