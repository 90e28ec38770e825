package pulse

import (
	"sync"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	PulseSubmittedFunc func()

	calls struct {
		PulseSubmitted []struct{}
	}
	lockPulseSubmitted sync.RWMutex
}

func (mock *recorderMock) PulseSubmitted() {
	mock.lockPulseSubmitted.Lock()
	mock.calls.PulseSubmitted = append(mock.calls.PulseSubmitted, struct{}{})
	mock.lockPulseSubmitted.Unlock()
	if mock.PulseSubmittedFunc != nil {
		mock.PulseSubmittedFunc()
	}
}

func (mock *recorderMock) PulseSubmittedCalls() []struct{} {
	mock.lockPulseSubmitted.RLock()
	calls := mock.calls.PulseSubmitted
	mock.lockPulseSubmitted.RUnlock()
	return calls
}
