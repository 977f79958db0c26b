package exercise

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
	"sync"
)

var _ exerciseRepo = &exerciseRepoMock{}

type exerciseRepoMock struct {
	CreateFunc        func(ctx context.Context, e *domain.Exercise) (*domain.Exercise, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Exercise, error)
	ListByRoutineFunc func(ctx context.Context, routineID uuid.UUID) ([]*domain.Exercise, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.Exercise
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByRoutine []struct {
			Ctx       context.Context
			RoutineID uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockListByRoutine sync.RWMutex
}

func (mock *exerciseRepoMock) Create(ctx context.Context, e *domain.Exercise) (*domain.Exercise, error) {
	if mock.CreateFunc == nil {
		panic("exerciseRepoMock.CreateFunc: method is nil but exerciseRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Exercise
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *exerciseRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.Exercise
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *exerciseRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	if mock.GetByIDFunc == nil {
		panic("exerciseRepoMock.GetByIDFunc: method is nil but exerciseRepo.GetByID was just called")
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

func (mock *exerciseRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *exerciseRepoMock) ListByRoutine(ctx context.Context, routineID uuid.UUID) ([]*domain.Exercise, error) {
	if mock.ListByRoutineFunc == nil {
		panic("exerciseRepoMock.ListByRoutineFunc: method is nil but exerciseRepo.ListByRoutine was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RoutineID uuid.UUID
	}{Ctx: ctx, RoutineID: routineID}
	mock.lockListByRoutine.Lock()
	mock.calls.ListByRoutine = append(mock.calls.ListByRoutine, callInfo)
	mock.lockListByRoutine.Unlock()
	return mock.ListByRoutineFunc(ctx, routineID)
}

func (mock *exerciseRepoMock) ListByRoutineCalls() []struct {
	Ctx       context.Context
	RoutineID uuid.UUID
} {
	mock.lockListByRoutine.RLock()
	calls := mock.calls.ListByRoutine
	mock.lockListByRoutine.RUnlock()
	return calls
}

var _ publicationRepo = &publicationRepoMock{}

type publicationRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Publication, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *publicationRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Publication, error) {
	if mock.GetByIDFunc == nil {
		panic("publicationRepoMock.GetByIDFunc: method is nil but publicationRepo.GetByID was just called")
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

func (mock *publicationRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
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
