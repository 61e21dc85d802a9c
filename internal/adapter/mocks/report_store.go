package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	m "github.com/Wattsy2020/cpp-learning/internal/model"
)

// MockReportStore is a mock of adapter.ReportStore.
type MockReportStore struct {
	mock.Mock
}

// SaveReport mocks ReportStore.SaveReport.
func (_m *MockReportStore) SaveReport(ctx context.Context, path m.Path, report m.Report) error {
	ret := _m.Called(ctx, path, report)
	return ret.Error(0)
}

// LoadReport mocks ReportStore.LoadReport.
func (_m *MockReportStore) LoadReport(ctx context.Context, path m.Path) (m.Report, error) {
	ret := _m.Called(ctx, path)
	return ret.Get(0).(m.Report), ret.Error(1)
}
