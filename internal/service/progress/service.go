package progress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

type sampleRepo interface {
	Create(ctx context.Context, s *domain.ProgressSample) (*domain.ProgressSample, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressSample, error)
}

// Service records body-weight samples that progress reports aggregate.
type Service struct {
	samples sampleRepo
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new Progress service.
func NewService(log *slog.Logger, samples sampleRepo) *Service {
	return &Service{
		samples: samples,
		log:     log.With("service", "progress"),
		now:     time.Now,
	}
}

// RecordSampleInput holds one measurement. A zero RecordedOn means today.
type RecordSampleInput struct {
	WeightKg   float64
	RecordedOn time.Time
}

// Record stores a weight sample of the actor.
func (s *Service) Record(ctx context.Context, actor domain.Actor, input RecordSampleInput) (*domain.ProgressSample, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	if input.WeightKg <= 0 {
		return nil, domain.NewValidationError("weight_kg", "must be positive")
	}

	today := domain.DateOnly(s.now())
	day := today
	if !input.RecordedOn.IsZero() {
		day = domain.DateOnly(input.RecordedOn)
	}
	if day.After(today) {
		return nil, domain.NewValidationError("recorded_on", "must not be in the future")
	}

	sample, err := s.samples.Create(ctx, &domain.ProgressSample{
		UserID:     actor.UserID,
		WeightKg:   input.WeightKg,
		RecordedOn: day,
	})
	if err != nil {
		return nil, fmt.Errorf("record progress sample: %w", err)
	}

	s.log.InfoContext(ctx, "progress sample recorded",
		slog.String("user_id", actor.UserID.String()),
		slog.String("recorded_on", day.Format(time.DateOnly)),
	)

	return sample, nil
}

// List returns the actor's samples, most recent first.
func (s *Service) List(ctx context.Context, actor domain.Actor) ([]domain.ProgressSample, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	samples, err := s.samples.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list progress samples: %w", err)
	}
	return samples, nil
}
