package admin

import (
	"sync"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	AdminOperationFunc func(op string)

	calls struct {
		AdminOperation []struct {
			Op string
		}
	}
	lockAdminOperation sync.RWMutex
}

func (mock *recorderMock) AdminOperation(op string) {
	callInfo := struct {
		Op string
	}{Op: op}
	mock.lockAdminOperation.Lock()
	mock.calls.AdminOperation = append(mock.calls.AdminOperation, callInfo)
	mock.lockAdminOperation.Unlock()
	if mock.AdminOperationFunc != nil {
		mock.AdminOperationFunc(op)
	}
}

func (mock *recorderMock) AdminOperationCalls() []struct {
	Op string
} {
	mock.lockAdminOperation.RLock()
	calls := mock.calls.AdminOperation
	mock.lockAdminOperation.RUnlock()
	return calls
}
