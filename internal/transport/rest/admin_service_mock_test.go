package rest

import (
	"context"
	"sync"

	"github.com/fixure/fixure-backend/internal/domain"
	"github.com/fixure/fixure-backend/internal/service/admin"
)

var _ adminService = &adminServiceMock{}

type adminServiceMock struct {
	StatsFunc          func(ctx context.Context) domain.Stats
	ExportFunc         func(ctx context.Context) domain.Snapshot
	SeedSampleDataFunc func(ctx context.Context, mode admin.SeedMode) (admin.SampleData, error)
	ClearAllFunc       func(ctx context.Context, confirmed bool) error

	calls struct {
		Stats []struct {
			Ctx context.Context
		}
		Export []struct {
			Ctx context.Context
		}
		SeedSampleData []struct {
			Ctx  context.Context
			Mode admin.SeedMode
		}
		ClearAll []struct {
			Ctx       context.Context
			Confirmed bool
		}
	}
	lockStats          sync.RWMutex
	lockExport         sync.RWMutex
	lockSeedSampleData sync.RWMutex
	lockClearAll       sync.RWMutex
}

func (mock *adminServiceMock) Stats(ctx context.Context) domain.Stats {
	if mock.StatsFunc == nil {
		panic("adminServiceMock.StatsFunc: method is nil but adminService.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *adminServiceMock) StatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *adminServiceMock) Export(ctx context.Context) domain.Snapshot {
	if mock.ExportFunc == nil {
		panic("adminServiceMock.ExportFunc: method is nil but adminService.Export was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockExport.Lock()
	mock.calls.Export = append(mock.calls.Export, callInfo)
	mock.lockExport.Unlock()
	return mock.ExportFunc(ctx)
}

func (mock *adminServiceMock) ExportCalls() []struct {
	Ctx context.Context
} {
	mock.lockExport.RLock()
	calls := mock.calls.Export
	mock.lockExport.RUnlock()
	return calls
}

func (mock *adminServiceMock) SeedSampleData(ctx context.Context, mode admin.SeedMode) (admin.SampleData, error) {
	if mock.SeedSampleDataFunc == nil {
		panic("adminServiceMock.SeedSampleDataFunc: method is nil but adminService.SeedSampleData was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Mode admin.SeedMode
	}{Ctx: ctx, Mode: mode}
	mock.lockSeedSampleData.Lock()
	mock.calls.SeedSampleData = append(mock.calls.SeedSampleData, callInfo)
	mock.lockSeedSampleData.Unlock()
	return mock.SeedSampleDataFunc(ctx, mode)
}

func (mock *adminServiceMock) SeedSampleDataCalls() []struct {
	Ctx  context.Context
	Mode admin.SeedMode
} {
	mock.lockSeedSampleData.RLock()
	calls := mock.calls.SeedSampleData
	mock.lockSeedSampleData.RUnlock()
	return calls
}

func (mock *adminServiceMock) ClearAll(ctx context.Context, confirmed bool) error {
	if mock.ClearAllFunc == nil {
		panic("adminServiceMock.ClearAllFunc: method is nil but adminService.ClearAll was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Confirmed bool
	}{Ctx: ctx, Confirmed: confirmed}
	mock.lockClearAll.Lock()
	mock.calls.ClearAll = append(mock.calls.ClearAll, callInfo)
	mock.lockClearAll.Unlock()
	return mock.ClearAllFunc(ctx, confirmed)
}

func (mock *adminServiceMock) ClearAllCalls() []struct {
	Ctx       context.Context
	Confirmed bool
} {
	mock.lockClearAll.RLock()
	calls := mock.calls.ClearAll
	mock.lockClearAll.RUnlock()
	return calls
}
