package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidafit-backend/internal/config"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
	"github.com/heartmarshall/vidafit-backend/internal/sanitize"
)

type verificationRepo interface {
	Create(ctx context.Context, v *domain.Verification) (*domain.Verification, error)
	ListByPublication(ctx context.Context, publicationID uuid.UUID) ([]*domain.Verification, error)
}

type publicationRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetSpecialistProfile(ctx context.Context, userID uuid.UUID) (*domain.SpecialistProfile, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventSink interface {
	Publish(ctx context.Context, ev domain.Event)
}

// Service records specialist verifications of publications.
type Service struct {
	verifications verificationRepo
	publications  publicationRepo
	users         userRepo
	tx            txManager
	events        eventSink
	log           *slog.Logger
	cfg           config.ContentConfig
}

// NewService creates a new Verification service.
func NewService(
	log *slog.Logger,
	verifications verificationRepo,
	publications publicationRepo,
	users userRepo,
	tx txManager,
	events eventSink,
	cfg config.ContentConfig,
) *Service {
	return &Service{
		verifications: verifications,
		publications:  publications,
		users:         users,
		tx:            tx,
		events:        events,
		log:           log.With("service", "verification"),
		cfg:           cfg,
	}
}

// VerifyInput holds the parameters of a verification.
type VerifyInput struct {
	PublicationID uuid.UUID
	Comment       string
}

// Validate checks all fields against the content limits and collects all errors.
func (i VerifyInput) Validate(cfg config.ContentConfig) error {
	var errs []domain.FieldError

	if i.PublicationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "publication_id", Message: "required"})
	}
	if len(i.Comment) > cfg.MaxCommentLength {
		errs = append(errs, domain.FieldError{Field: "comment", Message: fmt.Sprintf("max %d characters", cfg.MaxCommentLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Verify records a positive verification of a publication by the actor.
// The actor's role is re-read from the store and must be SPECIALIST at call
// time. The publication's Verified flag is left unchanged.
func (s *Service) Verify(ctx context.Context, actor domain.Actor, input VerifyInput) (*domain.Verification, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	var created *domain.Verification
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.publications.Exists(txCtx, input.PublicationID)
		if err != nil {
			return fmt.Errorf("check publication: %w", err)
		}
		if !exists {
			return fmt.Errorf("publication %s: %w", input.PublicationID, domain.ErrNotFound)
		}

		specialist, err := s.users.GetByID(txCtx, actor.UserID)
		if err != nil {
			return fmt.Errorf("get specialist: %w", err)
		}
		if !specialist.Role.IsSpecialist() {
			return fmt.Errorf("user %s with role %s: %w", specialist.ID, specialist.Role, domain.ErrForbidden)
		}

		created, err = s.verifications.Create(txCtx, &domain.Verification{
			PublicationID: input.PublicationID,
			SpecialistID:  specialist.ID,
			Outcome:       true,
			Comment:       sanitize.Text(input.Comment),
		})
		if err != nil {
			return fmt.Errorf("create verification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventPublicationVerified, input.PublicationID, actor.UserID, map[string]string{
		"verification_id": created.ID.String(),
	}))

	s.log.InfoContext(ctx, "publication verified",
		slog.String("user_id", actor.UserID.String()),
		slog.String("publication_id", input.PublicationID.String()),
	)

	return created, nil
}

// ListByPublication returns the verification history of a publication,
// oldest first, with each verifier's declared specialty. A verifier without a
// specialist profile gets an empty Specialty. Fails with domain.ErrNotFound if
// the publication does not exist.
func (s *Service) ListByPublication(ctx context.Context, publicationID uuid.UUID) ([]*domain.Verification, error) {
	exists, err := s.publications.Exists(ctx, publicationID)
	if err != nil {
		return nil, fmt.Errorf("check publication: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("publication %s: %w", publicationID, domain.ErrNotFound)
	}

	list, err := s.verifications.ListByPublication(ctx, publicationID)
	if err != nil {
		return nil, fmt.Errorf("list verifications: %w", err)
	}

	specialties := make(map[uuid.UUID]string, len(list))
	for _, v := range list {
		specialty, ok := specialties[v.SpecialistID]
		if !ok {
			specialty, err = s.specialtyOf(ctx, v.SpecialistID)
			if err != nil {
				return nil, err
			}
			specialties[v.SpecialistID] = specialty
		}
		v.Specialty = specialty
	}
	return list, nil
}

func (s *Service) specialtyOf(ctx context.Context, specialistID uuid.UUID) (string, error) {
	profile, err := s.users.GetSpecialistProfile(ctx, specialistID)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get specialist profile: %w", err)
	}
	return profile.Specialty, nil
}
