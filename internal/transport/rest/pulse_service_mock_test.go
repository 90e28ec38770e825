package rest

import (
	"context"
	"sync"

	"github.com/fixure/fixure-backend/internal/domain"
	"github.com/fixure/fixure-backend/internal/service/pulse"
)

var _ pulseService = &pulseServiceMock{}

type pulseServiceMock struct {
	SubmitFunc func(ctx context.Context, input pulse.SubmitInput) (domain.PulseRecord, error)
	ListFunc   func(ctx context.Context) pulse.ListResult

	calls struct {
		Submit []struct {
			Ctx   context.Context
			Input pulse.SubmitInput
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockSubmit sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *pulseServiceMock) Submit(ctx context.Context, input pulse.SubmitInput) (domain.PulseRecord, error) {
	if mock.SubmitFunc == nil {
		panic("pulseServiceMock.SubmitFunc: method is nil but pulseService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pulse.SubmitInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *pulseServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input pulse.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *pulseServiceMock) List(ctx context.Context) pulse.ListResult {
	if mock.ListFunc == nil {
		panic("pulseServiceMock.ListFunc: method is nil but pulseService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *pulseServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
