package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/Wattsy2020/cpp-learning/internal/model"
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd    *cobra.Command
	config StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.config = resolveStartConfig(options)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) error {
	return nil
}

// DisplayFileResult prints one line per processed file.
func (s *SimpleUI) DisplayFileResult(ctx context.Context, result m.FileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if result.Err != nil {
		s.errorf("%s: %v\n", result.Source.Path, result.Err)
		return
	}

	if s.config.mode == ModeList {
		return
	}

	s.printf("%s: %s (%d assertion(s))\n", result.Source.Path, fileStatus(result, s.config.mode == ModePreview), len(result.Rewrites))
}

// DisplayDiff prints a unified diff of the pending rewrite.
func (s *SimpleUI) DisplayDiff(ctx context.Context, path m.Path, before, after string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	diff, err := renderUnifiedDiff(path, before, after)
	if err != nil {
		return err
	}

	s.printf("%s", diff)

	return nil
}

// DisplayEstimation prints the number of rewritable assertions per file.
func (s *SimpleUI) DisplayEstimation(ctx context.Context, results []m.FileResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderEstimationTable(results))

	return nil
}

// DisplaySummary prints the run totals.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.Report) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderSummaryTable(report))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
