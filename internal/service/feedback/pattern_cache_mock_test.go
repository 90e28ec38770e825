package feedback

import (
	"sync"

	"github.com/fixure/fixure-backend/internal/domain"
)

var _ patternCache = &patternCacheMock{}

type patternCacheMock struct {
	PatternsFunc   func(load func() []domain.FeedbackRecord) []domain.Pattern
	InvalidateFunc func()

	calls struct {
		Patterns []struct {
			Load func() []domain.FeedbackRecord
		}
		Invalidate []struct{}
	}
	lockPatterns   sync.RWMutex
	lockInvalidate sync.RWMutex
}

func (mock *patternCacheMock) Patterns(load func() []domain.FeedbackRecord) []domain.Pattern {
	if mock.PatternsFunc == nil {
		panic("patternCacheMock.PatternsFunc: method is nil but patternCache.Patterns was just called")
	}
	callInfo := struct {
		Load func() []domain.FeedbackRecord
	}{Load: load}
	mock.lockPatterns.Lock()
	mock.calls.Patterns = append(mock.calls.Patterns, callInfo)
	mock.lockPatterns.Unlock()
	return mock.PatternsFunc(load)
}

func (mock *patternCacheMock) PatternsCalls() []struct {
	Load func() []domain.FeedbackRecord
} {
	mock.lockPatterns.RLock()
	calls := mock.calls.Patterns
	mock.lockPatterns.RUnlock()
	return calls
}

func (mock *patternCacheMock) Invalidate() {
	if mock.InvalidateFunc == nil {
		panic("patternCacheMock.InvalidateFunc: method is nil but patternCache.Invalidate was just called")
	}
	mock.lockInvalidate.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, struct{}{})
	mock.lockInvalidate.Unlock()
	mock.InvalidateFunc()
}

func (mock *patternCacheMock) InvalidateCalls() []struct{} {
	mock.lockInvalidate.RLock()
	calls := mock.calls.Invalidate
	mock.lockInvalidate.RUnlock()
	return calls
}
