// Package controller provides the output adapters for displaying rewrite results.
package controller

import (
	"context"

	m "github.com/Wattsy2020/cpp-learning/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRewrite StartMode = iota
	ModePreview
	ModeList
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRewriteMode sets the UI to in-place rewrite mode.
func WithRewriteMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRewrite
	}
}

// WithPreviewMode sets the UI to dry-run mode, where diffs are shown instead
// of files being written.
func WithPreviewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePreview
	}
}

// WithListMode sets the UI to listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

func resolveStartConfig(options []StartOption) StartConfig {
	config := StartConfig{mode: ModeRewrite}
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI defines the interface for reporting rewrite progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context) error
	DisplayFileResult(ctx context.Context, result m.FileResult)
	DisplayDiff(ctx context.Context, path m.Path, before, after string) error
	DisplayEstimation(ctx context.Context, results []m.FileResult) error
	DisplaySummary(ctx context.Context, report m.Report)
}
