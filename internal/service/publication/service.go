package publication

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidafit-backend/internal/config"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

type publicationRepo interface {
	Create(ctx context.Context, p *domain.Publication) (*domain.Publication, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Publication, error)
	LockForUpdate(ctx context.Context, id uuid.UUID) (*domain.Publication, error)
	AddExercises(ctx context.Context, routineID uuid.UUID, exerciseIDs []uuid.UUID) (int, error)

	List(ctx context.Context, filter domain.PublicationFilter) ([]*domain.Publication, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Publication, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*domain.Publication, error)
	ListRoutinesByGoal(ctx context.Context, substr string) ([]*domain.Publication, error)
}

type exerciseRepo interface {
	ExistByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)
}

type progressRepo interface {
	ListInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.ProgressSample, error)
}

type groupRepo interface {
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

// Service implements the publication content model: creation of every
// variant, the read projections and routine exercise assignment.
type Service struct {
	publications publicationRepo
	exercises    exerciseRepo
	progress     progressRepo
	groups       groupRepo
	audit        auditRepo
	tx           txManager
	events       eventSink
	cfg          config.ContentConfig
	log          *slog.Logger
}

// NewService creates a new Publication service.
func NewService(
	log *slog.Logger,
	publications publicationRepo,
	exercises exerciseRepo,
	progress progressRepo,
	groups groupRepo,
	audit auditRepo,
	tx txManager,
	events eventSink,
	cfg config.ContentConfig,
) *Service {
	return &Service{
		publications: publications,
		exercises:    exercises,
		progress:     progress,
		groups:       groups,
		audit:        audit,
		tx:           tx,
		events:       events,
		cfg:          cfg,
		log:          log.With("service", "publication"),
	}
}
