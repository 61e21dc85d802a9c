// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"context"
	"os"

	"github.com/stretchr/testify/mock"

	m "github.com/Wattsy2020/cpp-learning/internal/model"
)

// MockSourceFSAdapter is a mock of adapter.SourceFSAdapter.
type MockSourceFSAdapter struct {
	mock.Mock
}

// AbsPath mocks SourceFSAdapter.AbsPath.
func (_m *MockSourceFSAdapter) AbsPath(ctx context.Context, path m.Path) (m.Path, error) {
	ret := _m.Called(ctx, path)
	return ret.Get(0).(m.Path), ret.Error(1)
}

// ReadFile mocks SourceFSAdapter.ReadFile.
func (_m *MockSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	ret := _m.Called(ctx, path)

	var content []byte
	if v := ret.Get(0); v != nil {
		content = v.([]byte)
	}

	return content, ret.Error(1)
}

// WriteFile mocks SourceFSAdapter.WriteFile.
func (_m *MockSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte) error {
	ret := _m.Called(ctx, path, content)
	return ret.Error(0)
}

// FileInfo mocks SourceFSAdapter.FileInfo.
func (_m *MockSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	ret := _m.Called(ctx, path)

	var info os.FileInfo
	if v := ret.Get(0); v != nil {
		info = v.(os.FileInfo)
	}

	return info, ret.Error(1)
}
