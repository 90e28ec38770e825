package admin

import (
	"context"
	"sync"

	"github.com/fixure/fixure-backend/internal/domain"
)

var _ feedbackStore = &feedbackStoreMock{}

type feedbackStoreMock struct {
	ListAllFunc func(ctx context.Context) []domain.FeedbackRecord
	AppendFunc  func(ctx context.Context, rec domain.FeedbackRecord) error
	ReplaceFunc func(ctx context.Context, recs []domain.FeedbackRecord) error
	ClearFunc   func(ctx context.Context) error

	calls struct {
		ListAll []struct {
			Ctx context.Context
		}
		Append []struct {
			Ctx context.Context
			Rec domain.FeedbackRecord
		}
		Replace []struct {
			Ctx  context.Context
			Recs []domain.FeedbackRecord
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

func (mock *feedbackStoreMock) ListAll(ctx context.Context) []domain.FeedbackRecord {
	if mock.ListAllFunc == nil {
		panic("feedbackStoreMock.ListAllFunc: method is nil but feedbackStore.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *feedbackStoreMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *feedbackStoreMock) Append(ctx context.Context, rec domain.FeedbackRecord) error {
	if mock.AppendFunc == nil {
		panic("feedbackStoreMock.AppendFunc: method is nil but feedbackStore.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.FeedbackRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, rec)
}

func (mock *feedbackStoreMock) AppendCalls() []struct {
	Ctx context.Context
	Rec domain.FeedbackRecord
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *feedbackStoreMock) Replace(ctx context.Context, recs []domain.FeedbackRecord) error {
	if mock.ReplaceFunc == nil {
		panic("feedbackStoreMock.ReplaceFunc: method is nil but feedbackStore.Replace was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Recs []domain.FeedbackRecord
	}{Ctx: ctx, Recs: recs}
	mock.lockReplace.Lock()
	mock.calls.Replace = append(mock.calls.Replace, callInfo)
	mock.lockReplace.Unlock()
	return mock.ReplaceFunc(ctx, recs)
}

func (mock *feedbackStoreMock) ReplaceCalls() []struct {
	Ctx  context.Context
	Recs []domain.FeedbackRecord
} {
	mock.lockReplace.RLock()
	calls := mock.calls.Replace
	mock.lockReplace.RUnlock()
	return calls
}

func (mock *feedbackStoreMock) Clear(ctx context.Context) error {
	if mock.ClearFunc == nil {
		panic("feedbackStoreMock.ClearFunc: method is nil but feedbackStore.Clear was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockClear.Lock()
	mock.calls.Clear = append(mock.calls.Clear, callInfo)
	mock.lockClear.Unlock()
	return mock.ClearFunc(ctx)
}

func (mock *feedbackStoreMock) ClearCalls() []struct {
	Ctx context.Context
} {
	mock.lockClear.RLock()
	calls := mock.calls.Clear
	mock.lockClear.RUnlock()
	return calls
}
