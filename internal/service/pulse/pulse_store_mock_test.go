package pulse

import (
	"context"
	"sync"

	"github.com/fixure/fixure-backend/internal/domain"
)

var _ pulseStore = &pulseStoreMock{}

type pulseStoreMock struct {
	ListAllFunc func(ctx context.Context) []domain.PulseRecord
	AppendFunc  func(ctx context.Context, rec domain.PulseRecord) error

	calls struct {
		ListAll []struct {
			Ctx context.Context
		}
		Append []struct {
			Ctx context.Context
			Rec domain.PulseRecord
		}
	}
	lockListAll sync.RWMutex
	lockAppend  sync.RWMutex
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
