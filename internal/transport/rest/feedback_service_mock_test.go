package rest

import (
	"context"
	"sync"

	"github.com/fixure/fixure-backend/internal/domain"
	"github.com/fixure/fixure-backend/internal/service/feedback"
)

var _ feedbackService = &feedbackServiceMock{}

type feedbackServiceMock struct {
	SubmitFunc       func(ctx context.Context, input feedback.SubmitInput) (domain.FeedbackRecord, error)
	ListFunc         func(ctx context.Context, input feedback.ListInput) (feedback.ListResult, error)
	DashboardFunc    func(ctx context.Context, input feedback.ListInput) (feedback.DashboardResult, error)
	GetFunc          func(ctx context.Context, id int64) (domain.FeedbackRecord, error)
	UpdateStatusFunc func(ctx context.Context, input feedback.UpdateStatusInput) (domain.FeedbackRecord, bool, error)
	AddSolutionFunc  func(ctx context.Context, input feedback.AddSolutionInput) (domain.FeedbackRecord, bool, error)
	SuggestionsFunc  func() []string
	PatternsFunc     func(ctx context.Context) []domain.Pattern

	calls struct {
		Submit []struct {
			Ctx   context.Context
			Input feedback.SubmitInput
		}
		List []struct {
			Ctx   context.Context
			Input feedback.ListInput
		}
		Dashboard []struct {
			Ctx   context.Context
			Input feedback.ListInput
		}
		Get []struct {
			Ctx context.Context
			Id  int64
		}
		UpdateStatus []struct {
			Ctx   context.Context
			Input feedback.UpdateStatusInput
		}
		AddSolution []struct {
			Ctx   context.Context
			Input feedback.AddSolutionInput
		}
		Suggestions []struct{}
		Patterns    []struct {
			Ctx context.Context
		}
	}
	lockSubmit       sync.RWMutex
	lockList         sync.RWMutex
	lockDashboard    sync.RWMutex
	lockGet          sync.RWMutex
	lockUpdateStatus sync.RWMutex
	lockAddSolution  sync.RWMutex
	lockSuggestions  sync.RWMutex
	lockPatterns     sync.RWMutex
}

func (mock *feedbackServiceMock) Submit(ctx context.Context, input feedback.SubmitInput) (domain.FeedbackRecord, error) {
	if mock.SubmitFunc == nil {
		panic("feedbackServiceMock.SubmitFunc: method is nil but feedbackService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input feedback.SubmitInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *feedbackServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input feedback.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *feedbackServiceMock) List(ctx context.Context, input feedback.ListInput) (feedback.ListResult, error) {
	if mock.ListFunc == nil {
		panic("feedbackServiceMock.ListFunc: method is nil but feedbackService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input feedback.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *feedbackServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input feedback.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *feedbackServiceMock) Dashboard(ctx context.Context, input feedback.ListInput) (feedback.DashboardResult, error) {
	if mock.DashboardFunc == nil {
		panic("feedbackServiceMock.DashboardFunc: method is nil but feedbackService.Dashboard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input feedback.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockDashboard.Lock()
	mock.calls.Dashboard = append(mock.calls.Dashboard, callInfo)
	mock.lockDashboard.Unlock()
	return mock.DashboardFunc(ctx, input)
}

func (mock *feedbackServiceMock) DashboardCalls() []struct {
	Ctx   context.Context
	Input feedback.ListInput
} {
	mock.lockDashboard.RLock()
	calls := mock.calls.Dashboard
	mock.lockDashboard.RUnlock()
	return calls
}

func (mock *feedbackServiceMock) Get(ctx context.Context, id int64) (domain.FeedbackRecord, error) {
	if mock.GetFunc == nil {
		panic("feedbackServiceMock.GetFunc: method is nil but feedbackService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *feedbackServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *feedbackServiceMock) UpdateStatus(ctx context.Context, input feedback.UpdateStatusInput) (domain.FeedbackRecord, bool, error) {
	if mock.UpdateStatusFunc == nil {
		panic("feedbackServiceMock.UpdateStatusFunc: method is nil but feedbackService.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input feedback.UpdateStatusInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, input)
}

func (mock *feedbackServiceMock) UpdateStatusCalls() []struct {
	Ctx   context.Context
	Input feedback.UpdateStatusInput
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *feedbackServiceMock) AddSolution(ctx context.Context, input feedback.AddSolutionInput) (domain.FeedbackRecord, bool, error) {
	if mock.AddSolutionFunc == nil {
		panic("feedbackServiceMock.AddSolutionFunc: method is nil but feedbackService.AddSolution was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input feedback.AddSolutionInput
	}{Ctx: ctx, Input: input}
	mock.lockAddSolution.Lock()
	mock.calls.AddSolution = append(mock.calls.AddSolution, callInfo)
	mock.lockAddSolution.Unlock()
	return mock.AddSolutionFunc(ctx, input)
}

func (mock *feedbackServiceMock) AddSolutionCalls() []struct {
	Ctx   context.Context
	Input feedback.AddSolutionInput
} {
	mock.lockAddSolution.RLock()
	calls := mock.calls.AddSolution
	mock.lockAddSolution.RUnlock()
	return calls
}

func (mock *feedbackServiceMock) Suggestions() []string {
	if mock.SuggestionsFunc == nil {
		panic("feedbackServiceMock.SuggestionsFunc: method is nil but feedbackService.Suggestions was just called")
	}
	callInfo := struct{}{}
	mock.lockSuggestions.Lock()
	mock.calls.Suggestions = append(mock.calls.Suggestions, callInfo)
	mock.lockSuggestions.Unlock()
	return mock.SuggestionsFunc()
}

func (mock *feedbackServiceMock) SuggestionsCalls() []struct{} {
	mock.lockSuggestions.RLock()
	calls := mock.calls.Suggestions
	mock.lockSuggestions.RUnlock()
	return calls
}

func (mock *feedbackServiceMock) Patterns(ctx context.Context) []domain.Pattern {
	if mock.PatternsFunc == nil {
		panic("feedbackServiceMock.PatternsFunc: method is nil but feedbackService.Patterns was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockPatterns.Lock()
	mock.calls.Patterns = append(mock.calls.Patterns, callInfo)
	mock.lockPatterns.Unlock()
	return mock.PatternsFunc(ctx)
}

func (mock *feedbackServiceMock) PatternsCalls() []struct {
	Ctx context.Context
} {
	mock.lockPatterns.RLock()
	calls := mock.calls.Patterns
	mock.lockPatterns.RUnlock()
	return calls
}
