package feedback

import (
	"context"
	"sync"

	"github.com/fixure/fixure-backend/internal/domain"
)

var _ feedbackStore = &feedbackStoreMock{}

type feedbackStoreMock struct {
	ListAllFunc func(ctx context.Context) []domain.FeedbackRecord
	AppendFunc  func(ctx context.Context, rec domain.FeedbackRecord) error
	UpdateFunc  func(ctx context.Context, id int64, mutate func(domain.FeedbackRecord) domain.FeedbackRecord) (domain.FeedbackRecord, bool, error)

	calls struct {
		ListAll []struct {
			Ctx context.Context
		}
		Append []struct {
			Ctx context.Context
			Rec domain.FeedbackRecord
		}
		Update []struct {
			Ctx    context.Context
			ID     int64
			Mutate func(domain.FeedbackRecord) domain.FeedbackRecord
		}
	}
	lockListAll sync.RWMutex
	lockAppend  sync.RWMutex
	lockUpdate  sync.RWMutex
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

func (mock *feedbackStoreMock) Update(ctx context.Context, id int64, mutate func(domain.FeedbackRecord) domain.FeedbackRecord) (domain.FeedbackRecord, bool, error) {
	if mock.UpdateFunc == nil {
		panic("feedbackStoreMock.UpdateFunc: method is nil but feedbackStore.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Mutate func(domain.FeedbackRecord) domain.FeedbackRecord
	}{Ctx: ctx, ID: id, Mutate: mutate}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, mutate)
}

func (mock *feedbackStoreMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     int64
	Mutate func(domain.FeedbackRecord) domain.FeedbackRecord
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
