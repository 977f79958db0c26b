package progress

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
	"sync"
)

var _ sampleRepo = &sampleRepoMock{}

type sampleRepoMock struct {
	CreateFunc     func(ctx context.Context, s *domain.ProgressSample) (*domain.ProgressSample, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.ProgressSample, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.ProgressSample
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *sampleRepoMock) Create(ctx context.Context, s *domain.ProgressSample) (*domain.ProgressSample, error) {
	if mock.CreateFunc == nil {
		panic("sampleRepoMock.CreateFunc: method is nil but sampleRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.ProgressSample
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sampleRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.ProgressSample
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sampleRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressSample, error) {
	if mock.ListByUserFunc == nil {
		panic("sampleRepoMock.ListByUserFunc: method is nil but sampleRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *sampleRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
