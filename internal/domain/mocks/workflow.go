package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/Wattsy2020/cpp-learning/internal/domain"
)

// MockWorkflow is a mock of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow returns a MockWorkflow whose expectations are asserted
// when the test finishes.
func NewMockWorkflow(t *testing.T) *MockWorkflow {
	t.Helper()

	w := &MockWorkflow{}
	w.Test(t)
	t.Cleanup(func() { w.AssertExpectations(t) })

	return w
}

// Rewrite mocks Workflow.Rewrite.
func (_m *MockWorkflow) Rewrite(ctx context.Context, args domain.RewriteArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}

// List mocks Workflow.List.
func (_m *MockWorkflow) List(ctx context.Context, args domain.ListArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}
