package group

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
	"sync"
)

var _ groupRepo = &groupRepoMock{}

type groupRepoMock struct {
	AddMemberFunc     func(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) error
	CreateFunc        func(ctx context.Context, g *domain.Group) (*domain.Group, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	IsMemberFunc      func(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) (bool, error)
	ListByMemberFunc  func(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error)
	ListMembersFunc   func(ctx context.Context, groupID uuid.UUID) ([]domain.GroupMember, error)
	ListPublicFunc    func(ctx context.Context) ([]*domain.Group, error)
	LockForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	NameTakenFunc     func(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, params domain.GroupUpdateParams) (*domain.Group, error)

	calls struct {
		AddMember []struct {
			Ctx     context.Context
			GroupID uuid.UUID
			UserID  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			G   *domain.Group
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		IsMember []struct {
			Ctx     context.Context
			GroupID uuid.UUID
			UserID  uuid.UUID
		}
		ListByMember []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListMembers []struct {
			Ctx     context.Context
			GroupID uuid.UUID
		}
		ListPublic    []struct{ Ctx context.Context }
		LockForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		NameTaken []struct {
			Ctx       context.Context
			Name      string
			ExcludeID uuid.UUID
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.GroupUpdateParams
		}
	}
	lockAddMember     sync.RWMutex
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockIsMember      sync.RWMutex
	lockListByMember  sync.RWMutex
	lockListMembers   sync.RWMutex
	lockListPublic    sync.RWMutex
	lockLockForUpdate sync.RWMutex
	lockNameTaken     sync.RWMutex
	lockUpdate        sync.RWMutex
}

func (mock *groupRepoMock) AddMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) error {
	if mock.AddMemberFunc == nil {
		panic("groupRepoMock.AddMemberFunc: method is nil but groupRepo.AddMember was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		GroupID uuid.UUID
		UserID  uuid.UUID
	}{Ctx: ctx, GroupID: groupID, UserID: userID}
	mock.lockAddMember.Lock()
	mock.calls.AddMember = append(mock.calls.AddMember, callInfo)
	mock.lockAddMember.Unlock()
	return mock.AddMemberFunc(ctx, groupID, userID)
}

func (mock *groupRepoMock) AddMemberCalls() []struct {
	Ctx     context.Context
	GroupID uuid.UUID
	UserID  uuid.UUID
} {
	mock.lockAddMember.RLock()
	calls := mock.calls.AddMember
	mock.lockAddMember.RUnlock()
	return calls
}

func (mock *groupRepoMock) Create(ctx context.Context, g *domain.Group) (*domain.Group, error) {
	if mock.CreateFunc == nil {
		panic("groupRepoMock.CreateFunc: method is nil but groupRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   *domain.Group
	}{Ctx: ctx, G: g}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, g)
}

func (mock *groupRepoMock) CreateCalls() []struct {
	Ctx context.Context
	G   *domain.Group
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *groupRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	if mock.GetByIDFunc == nil {
		panic("groupRepoMock.GetByIDFunc: method is nil but groupRepo.GetByID was just called")
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

func (mock *groupRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *groupRepoMock) IsMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) (bool, error) {
	if mock.IsMemberFunc == nil {
		panic("groupRepoMock.IsMemberFunc: method is nil but groupRepo.IsMember was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		GroupID uuid.UUID
		UserID  uuid.UUID
	}{Ctx: ctx, GroupID: groupID, UserID: userID}
	mock.lockIsMember.Lock()
	mock.calls.IsMember = append(mock.calls.IsMember, callInfo)
	mock.lockIsMember.Unlock()
	return mock.IsMemberFunc(ctx, groupID, userID)
}

func (mock *groupRepoMock) IsMemberCalls() []struct {
	Ctx     context.Context
	GroupID uuid.UUID
	UserID  uuid.UUID
} {
	mock.lockIsMember.RLock()
	calls := mock.calls.IsMember
	mock.lockIsMember.RUnlock()
	return calls
}

func (mock *groupRepoMock) ListByMember(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error) {
	if mock.ListByMemberFunc == nil {
		panic("groupRepoMock.ListByMemberFunc: method is nil but groupRepo.ListByMember was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByMember.Lock()
	mock.calls.ListByMember = append(mock.calls.ListByMember, callInfo)
	mock.lockListByMember.Unlock()
	return mock.ListByMemberFunc(ctx, userID)
}

func (mock *groupRepoMock) ListByMemberCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByMember.RLock()
	calls := mock.calls.ListByMember
	mock.lockListByMember.RUnlock()
	return calls
}

func (mock *groupRepoMock) ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.GroupMember, error) {
	if mock.ListMembersFunc == nil {
		panic("groupRepoMock.ListMembersFunc: method is nil but groupRepo.ListMembers was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		GroupID uuid.UUID
	}{Ctx: ctx, GroupID: groupID}
	mock.lockListMembers.Lock()
	mock.calls.ListMembers = append(mock.calls.ListMembers, callInfo)
	mock.lockListMembers.Unlock()
	return mock.ListMembersFunc(ctx, groupID)
}

func (mock *groupRepoMock) ListMembersCalls() []struct {
	Ctx     context.Context
	GroupID uuid.UUID
} {
	mock.lockListMembers.RLock()
	calls := mock.calls.ListMembers
	mock.lockListMembers.RUnlock()
	return calls
}

func (mock *groupRepoMock) ListPublic(ctx context.Context) ([]*domain.Group, error) {
	if mock.ListPublicFunc == nil {
		panic("groupRepoMock.ListPublicFunc: method is nil but groupRepo.ListPublic was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListPublic.Lock()
	mock.calls.ListPublic = append(mock.calls.ListPublic, callInfo)
	mock.lockListPublic.Unlock()
	return mock.ListPublicFunc(ctx)
}

func (mock *groupRepoMock) ListPublicCalls() []struct{ Ctx context.Context } {
	mock.lockListPublic.RLock()
	calls := mock.calls.ListPublic
	mock.lockListPublic.RUnlock()
	return calls
}

func (mock *groupRepoMock) LockForUpdate(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	if mock.LockForUpdateFunc == nil {
		panic("groupRepoMock.LockForUpdateFunc: method is nil but groupRepo.LockForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockLockForUpdate.Lock()
	mock.calls.LockForUpdate = append(mock.calls.LockForUpdate, callInfo)
	mock.lockLockForUpdate.Unlock()
	return mock.LockForUpdateFunc(ctx, id)
}

func (mock *groupRepoMock) LockForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockLockForUpdate.RLock()
	calls := mock.calls.LockForUpdate
	mock.lockLockForUpdate.RUnlock()
	return calls
}

func (mock *groupRepoMock) NameTaken(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	if mock.NameTakenFunc == nil {
		panic("groupRepoMock.NameTakenFunc: method is nil but groupRepo.NameTaken was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Name      string
		ExcludeID uuid.UUID
	}{Ctx: ctx, Name: name, ExcludeID: excludeID}
	mock.lockNameTaken.Lock()
	mock.calls.NameTaken = append(mock.calls.NameTaken, callInfo)
	mock.lockNameTaken.Unlock()
	return mock.NameTakenFunc(ctx, name, excludeID)
}

func (mock *groupRepoMock) NameTakenCalls() []struct {
	Ctx       context.Context
	Name      string
	ExcludeID uuid.UUID
} {
	mock.lockNameTaken.RLock()
	calls := mock.calls.NameTaken
	mock.lockNameTaken.RUnlock()
	return calls
}

func (mock *groupRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.GroupUpdateParams) (*domain.Group, error) {
	if mock.UpdateFunc == nil {
		panic("groupRepoMock.UpdateFunc: method is nil but groupRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.GroupUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *groupRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.GroupUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ExistsFunc func(ctx context.Context, id uuid.UUID) (bool, error)

	calls struct {
		Exists []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockExists sync.RWMutex
}

func (mock *userRepoMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("userRepoMock.ExistsFunc: method is nil but userRepo.Exists was just called")
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

func (mock *userRepoMock) ExistsCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	GetByEntityFunc func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
	LogFunc         func(ctx context.Context, record domain.AuditRecord) error

	calls struct {
		GetByEntity []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   uuid.UUID
			Limit      int
		}
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
	}
	lockGetByEntity sync.RWMutex
	lockLog         sync.RWMutex
}

func (mock *auditRepoMock) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if mock.GetByEntityFunc == nil {
		panic("auditRepoMock.GetByEntityFunc: method is nil but auditRepo.GetByEntity was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   uuid.UUID
		Limit      int
	}{Ctx: ctx, EntityType: entityType, EntityID: entityID, Limit: limit}
	mock.lockGetByEntity.Lock()
	mock.calls.GetByEntity = append(mock.calls.GetByEntity, callInfo)
	mock.lockGetByEntity.Unlock()
	return mock.GetByEntityFunc(ctx, entityType, entityID, limit)
}

func (mock *auditRepoMock) GetByEntityCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   uuid.UUID
	Limit      int
} {
	mock.lockGetByEntity.RLock()
	calls := mock.calls.GetByEntity
	mock.lockGetByEntity.RUnlock()
	return calls
}

func (mock *auditRepoMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditRepoMock.LogFunc: method is nil but auditRepo.Log was just called")
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

func (mock *auditRepoMock) LogCalls() []struct {
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
