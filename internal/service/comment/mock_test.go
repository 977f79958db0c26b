package comment

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
	"sync"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	CreateFunc            func(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	ListByPublicationFunc func(ctx context.Context, publicationID uuid.UUID) ([]*domain.Comment, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Comment
		}
		ListByPublication []struct {
			Ctx           context.Context
			PublicationID uuid.UUID
		}
	}
	lockCreate            sync.RWMutex
	lockListByPublication sync.RWMutex
}

func (mock *commentRepoMock) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Comment
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Comment
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentRepoMock) ListByPublication(ctx context.Context, publicationID uuid.UUID) ([]*domain.Comment, error) {
	if mock.ListByPublicationFunc == nil {
		panic("commentRepoMock.ListByPublicationFunc: method is nil but commentRepo.ListByPublication was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		PublicationID uuid.UUID
	}{Ctx: ctx, PublicationID: publicationID}
	mock.lockListByPublication.Lock()
	mock.calls.ListByPublication = append(mock.calls.ListByPublication, callInfo)
	mock.lockListByPublication.Unlock()
	return mock.ListByPublicationFunc(ctx, publicationID)
}

func (mock *commentRepoMock) ListByPublicationCalls() []struct {
	Ctx           context.Context
	PublicationID uuid.UUID
} {
	mock.lockListByPublication.RLock()
	calls := mock.calls.ListByPublication
	mock.lockListByPublication.RUnlock()
	return calls
}

var _ publicationRepo = &publicationRepoMock{}

type publicationRepoMock struct {
	ExistsFunc func(ctx context.Context, id uuid.UUID) (bool, error)

	calls struct {
		Exists []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockExists sync.RWMutex
}

func (mock *publicationRepoMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("publicationRepoMock.ExistsFunc: method is nil but publicationRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, id)
}

func (mock *publicationRepoMock) ExistsCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

var _ eventSink = &eventSinkMock{}

type eventSinkMock struct {
	PublishFunc func(ctx context.Context, ev domain.Event)

	calls struct {
		Publish []struct {
			Ctx context.Context
			Ev  domain.Event
		}
	}
	lockPublish sync.RWMutex
}

func (mock *eventSinkMock) Publish(ctx context.Context, ev domain.Event) {
	if mock.PublishFunc == nil {
		panic("eventSinkMock.PublishFunc: method is nil but eventSink.Publish was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  domain.Event
	}{Ctx: ctx, Ev: ev}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	mock.PublishFunc(ctx, ev)
}

func (mock *eventSinkMock) PublishCalls() []struct {
	Ctx context.Context
	Ev  domain.Event
} {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
