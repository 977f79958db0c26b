package goal

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
	"sync"
)

var _ goalRepo = &goalRepoMock{}

type goalRepoMock struct {
	CreateFunc       func(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Goal, error)
	ListByUserFunc   func(ctx context.Context, userID uuid.UUID) ([]*domain.Goal, error)
	MarkAchievedFunc func(ctx context.Context, userID uuid.UUID, goalID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			G   *domain.Goal
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		MarkAchieved []struct {
			Ctx    context.Context
			UserID uuid.UUID
			GoalID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockListByUser   sync.RWMutex
	lockMarkAchieved sync.RWMutex
}

func (mock *goalRepoMock) Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	if mock.CreateFunc == nil {
		panic("goalRepoMock.CreateFunc: method is nil but goalRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   *domain.Goal
	}{Ctx: ctx, G: g}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, g)
}

func (mock *goalRepoMock) CreateCalls() []struct {
	Ctx context.Context
	G   *domain.Goal
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *goalRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	if mock.GetByIDFunc == nil {
		panic("goalRepoMock.GetByIDFunc: method is nil but goalRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *goalRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *goalRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Goal, error) {
	if mock.ListByUserFunc == nil {
		panic("goalRepoMock.ListByUserFunc: method is nil but goalRepo.ListByUser was just called")
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

func (mock *goalRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *goalRepoMock) MarkAchieved(ctx context.Context, userID uuid.UUID, goalID uuid.UUID) error {
	if mock.MarkAchievedFunc == nil {
		panic("goalRepoMock.MarkAchievedFunc: method is nil but goalRepo.MarkAchieved was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		GoalID uuid.UUID
	}{Ctx: ctx, UserID: userID, GoalID: goalID}
	mock.lockMarkAchieved.Lock()
	mock.calls.MarkAchieved = append(mock.calls.MarkAchieved, callInfo)
	mock.lockMarkAchieved.Unlock()
	return mock.MarkAchievedFunc(ctx, userID, goalID)
}

func (mock *goalRepoMock) MarkAchievedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	GoalID uuid.UUID
} {
	mock.lockMarkAchieved.RLock()
	calls := mock.calls.MarkAchieved
	mock.lockMarkAchieved.RUnlock()
	return calls
}

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	LogFunc func(ctx context.Context, record domain.AuditRecord) error

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
	}
	lockLog sync.RWMutex
}

func (mock *auditLoggerMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditLoggerMock.LogFunc: method is nil but auditLogger.Log was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{Ctx: ctx, Record: record}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *auditLoggerMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
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
