package group

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidafit-backend/internal/config"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

type groupRepo interface {
	Create(ctx context.Context, g *domain.Group) (*domain.Group, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	LockForUpdate(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	NameTaken(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, id uuid.UUID, params domain.GroupUpdateParams) (*domain.Group, error)

	// Membership
	AddMember(ctx context.Context, groupID, userID uuid.UUID) error
	IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.GroupMember, error)

	ListPublic(ctx context.Context) ([]*domain.Group, error)
	ListByMember(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error)
}

type userRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventSink interface {
	Publish(ctx context.Context, ev domain.Event)
}

// Service manages interest groups and their member sets.
type Service struct {
	groups groupRepo
	users  userRepo
	audit  auditRepo
	tx     txManager
	events eventSink
	cfg    config.ContentConfig
	log    *slog.Logger
}

// NewService creates a new Group service.
func NewService(
	log *slog.Logger,
	groups groupRepo,
	users userRepo,
	audit auditRepo,
	tx txManager,
	events eventSink,
	cfg config.ContentConfig,
) *Service {
	return &Service{
		groups: groups,
		users:  users,
		audit:  audit,
		tx:     tx,
		events: events,
		cfg:    cfg,
		log:    log.With("service", "group"),
	}
}
