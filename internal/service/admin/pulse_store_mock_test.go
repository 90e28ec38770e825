package admin

import (
	"context"
	"sync"

	"github.com/fixure/fixure-backend/internal/domain"
)

var _ pulseStore = &pulseStoreMock{}

type pulseStoreMock struct {
	ListAllFunc func(ctx context.Context) []domain.PulseRecord
	AppendFunc  func(ctx context.Context, rec domain.PulseRecord) error
	ReplaceFunc func(ctx context.Context, recs []domain.PulseRecord) error
	ClearFunc   func(ctx context.Context) error

	calls struct {
		ListAll []struct {
			Ctx context.Context
		}
		Append []struct {
			Ctx context.Context
			Rec domain.PulseRecord
		}
		Replace []struct {
			Ctx  context.Context
			Recs []domain.PulseRecord
		}
		Clear []struct {
			Ctx context.Context
		}
	}
	lockListAll sync.RWMutex
	lockAppend  sync.RWMutex
	lockReplace sync.RWMutex
	lockClear   sync.RWMutex
}

func (mock *pulseStoreMock) ListAll(ctx context.Context) []domain.PulseRecord {
	if mock.ListAllFunc == nil {
		panic("pulseStoreMock.ListAllFunc: method is nil but pulseStore.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *pulseStoreMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *pulseStoreMock) Append(ctx context.Context, rec domain.PulseRecord) error {
	if mock.AppendFunc == nil {
		panic("pulseStoreMock.AppendFunc: method is nil but pulseStore.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.PulseRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, rec)
}

func (mock *pulseStoreMock) AppendCalls() []struct {
	Ctx context.Context
	Rec domain.PulseRecord
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *pulseStoreMock) Replace(ctx context.Context, recs []domain.PulseRecord) error {
	if mock.ReplaceFunc == nil {
		panic("pulseStoreMock.ReplaceFunc: method is nil but pulseStore.Replace was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Recs []domain.PulseRecord
	}{Ctx: ctx, Recs: recs}
	mock.lockReplace.Lock()
	mock.calls.Replace = append(mock.calls.Replace, callInfo)
	mock.lockReplace.Unlock()
	return mock.ReplaceFunc(ctx, recs)
}

func (mock *pulseStoreMock) ReplaceCalls() []struct {
	Ctx  context.Context
	Recs []domain.PulseRecord
} {
	mock.lockReplace.RLock()
	calls := mock.calls.Replace
	mock.lockReplace.RUnlock()
	return calls
}

func (mock *pulseStoreMock) Clear(ctx context.Context) error {
	if mock.ClearFunc == nil {
		panic("pulseStoreMock.ClearFunc: method is nil but pulseStore.Clear was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockClear.Lock()
	mock.calls.Clear = append(mock.calls.Clear, callInfo)
	mock.lockClear.Unlock()
	return mock.ClearFunc(ctx)
}

func (mock *pulseStoreMock) ClearCalls() []struct {
	Ctx context.Context
} {
	mock.lockClear.RLock()
	calls := mock.calls.Clear
	mock.lockClear.RUnlock()
	return calls
}
