// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Wattsy2020/cpp-learning/internal/controller"
	m "github.com/Wattsy2020/cpp-learning/internal/model"
)

// MockUI is a mock of controller.UI.
type MockUI struct {
	mock.Mock
}

// Start mocks UI.Start. Options are not passed to the mock.
func (_m *MockUI) Start(ctx context.Context, options ...controller.StartOption) error {
	ret := _m.Called(ctx, len(options))
	return ret.Error(0)
}

// Close mocks UI.Close.
func (_m *MockUI) Close(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// DisplayFileResult mocks UI.DisplayFileResult.
func (_m *MockUI) DisplayFileResult(ctx context.Context, result m.FileResult) {
	_m.Called(ctx, result)
}

// DisplayDiff mocks UI.DisplayDiff.
func (_m *MockUI) DisplayDiff(ctx context.Context, path m.Path, before, after string) error {
	ret := _m.Called(ctx, path, before, after)
	return ret.Error(0)
}

// DisplayEstimation mocks UI.DisplayEstimation.
func (_m *MockUI) DisplayEstimation(ctx context.Context, results []m.FileResult) error {
	ret := _m.Called(ctx, results)
	return ret.Error(0)
}

// DisplaySummary mocks UI.DisplaySummary.
func (_m *MockUI) DisplaySummary(ctx context.Context, report m.Report) {
	_m.Called(ctx, report)
}
