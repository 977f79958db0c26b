package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vidafit-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres/audit"
	commentrepo "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres/comment"
	exerciserepo "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres/exercise"
	goalrepo "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres/goal"
	grouprepo "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres/group"
	progressrepo "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres/progress"
	publicationrepo "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres/publication"
	sharerepo "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres/share"
	userrepo "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres/user"
	verificationrepo "github.com/heartmarshall/vidafit-backend/internal/adapter/postgres/verification"
	"github.com/heartmarshall/vidafit-backend/internal/auth"
	"github.com/heartmarshall/vidafit-backend/internal/config"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
	"github.com/heartmarshall/vidafit-backend/internal/notify"
	"github.com/heartmarshall/vidafit-backend/internal/service/comment"
	"github.com/heartmarshall/vidafit-backend/internal/service/exercise"
	"github.com/heartmarshall/vidafit-backend/internal/service/goal"
	"github.com/heartmarshall/vidafit-backend/internal/service/group"
	"github.com/heartmarshall/vidafit-backend/internal/service/progress"
	"github.com/heartmarshall/vidafit-backend/internal/service/publication"
	"github.com/heartmarshall/vidafit-backend/internal/service/sharing"
	"github.com/heartmarshall/vidafit-backend/internal/service/verification"
)

// Core is the set of domain services a request layer calls into. Every
// operation takes the acting user explicitly; Authenticate produces one.
type Core struct {
	Publications  *publication.Service
	Groups        *group.Service
	Comments      *comment.Service
	Sharing       *sharing.Service
	Verifications *verification.Service
	Exercises     *exercise.Service
	Progress      *progress.Service
	Goals         *goal.Service

	resolver *auth.Resolver
}

// NewCore wires repositories over db and builds every service. Events are
// handed to sink after their transaction commits.
func NewCore(log *slog.Logger, db postgres.DB, sink notify.Sink, cfg *config.Config) *Core {
	txm := postgres.NewTxManager(db)

	audits := auditrepo.New(db)
	users := userrepo.New(db)
	groups := grouprepo.New(db)
	publications := publicationrepo.New(db)
	exercises := exerciserepo.New(db)
	samples := progressrepo.New(db)

	return &Core{
		Publications:  publication.NewService(log, publications, exercises, samples, groups, audits, txm, sink, cfg.Content),
		Groups:        group.NewService(log, groups, users, audits, txm, sink, cfg.Content),
		Comments:      comment.NewService(log, commentrepo.New(db), publications, txm, sink, cfg.Content),
		Sharing:       sharing.NewService(log, sharerepo.New(db), publications, groups, txm, sink),
		Verifications: verification.NewService(log, verificationrepo.New(db), publications, users, txm, sink, cfg.Content),
		Exercises:     exercise.NewService(log, exercises, publications, audits, txm),
		Progress:      progress.NewService(log, samples),
		Goals:         goal.NewService(log, goalrepo.New(db), audits, txm, sink),

		resolver: auth.NewResolver(log, auth.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer), users),
	}
}

// Authenticate resolves a bearer token into the actor to pass to services
// and returns ctx tagged for log correlation.
func (c *Core) Authenticate(ctx context.Context, bearerToken string) (context.Context, domain.Actor, error) {
	return c.resolver.Attach(ctx, bearerToken)
}
