package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Wattsy2020/cpp-learning/internal/adapter"
	"github.com/Wattsy2020/cpp-learning/internal/controller"
	m "github.com/Wattsy2020/cpp-learning/internal/model"
)

// ReportVersion is the version stamped on saved reports.
const ReportVersion = 1

// RewriteArgs contains the arguments for rewriting files.
type RewriteArgs struct {
	Paths     []m.Path
	Mode      m.MatchMode
	DryRun    bool   // show diffs, write nothing
	KeepGoing bool   // attempt every file even after a failure
	Threads   int    // files processed concurrently; values below 1 mean 1
	Report    m.Path // YAML report destination, empty to skip
}

// ListArgs contains the arguments for counting rewritable assertions.
type ListArgs struct {
	Paths []m.Path
	Mode  m.MatchMode
}

// Workflow drives the transformer over files on disk.
type Workflow interface {
	Rewrite(ctx context.Context, args RewriteArgs) error
	List(ctx context.Context, args ListArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI

	now func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		now:             time.Now,
	}
}

// processed is a file result plus the text needed to render a preview.
type processed struct {
	result m.FileResult
	before string
	after  string
	done   bool
}

func (w *workflow) Rewrite(ctx context.Context, args RewriteArgs) error {
	if len(args.Paths) == 0 {
		return ErrNoPaths
	}

	mode, err := m.ParseMatchMode(string(args.Mode))
	if err != nil {
		return err
	}

	startOption := controller.WithRewriteMode()
	if args.DryRun {
		startOption = controller.WithPreviewMode()
	}

	if err := w.Start(ctx, startOption); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	transformer := NewTransformer(WithMatchMode(mode))
	outcomes, runErr := w.processAll(ctx, transformer, args.Paths, args.Threads, args.KeepGoing, !args.DryRun)

	report := m.Report{
		Version:   ReportVersion,
		Generated: w.now(),
		Mode:      mode,
		DryRun:    args.DryRun,
	}

	var displayErr error

	for _, outcome := range outcomes {
		if args.DryRun && outcome.result.Changed() {
			if err := w.DisplayDiff(ctx, outcome.result.Source.Path, outcome.before, outcome.after); err != nil {
				displayErr = errors.Join(displayErr, err)
			}
		}

		w.DisplayFileResult(ctx, outcome.result)
		report.Files = append(report.Files, outcome.result)
	}

	w.DisplaySummary(ctx, report)

	files, lines := report.Totals()
	slog.Info("Rewrite finished", "files", len(report.Files), "changed", files, "lines", lines, "dry_run", args.DryRun)

	if args.Report != "" {
		if err := w.SaveReport(ctx, args.Report, report); err != nil {
			slog.Error("Failed to save report", "path", args.Report, "error", err)
			runErr = errors.Join(runErr, fmt.Errorf("save report: %w", err))
		}
	}

	if err := w.Close(ctx); err != nil {
		displayErr = errors.Join(displayErr, err)
	}

	if displayErr != nil {
		runErr = errors.Join(runErr, fmt.Errorf("display: %w", displayErr))
	}

	return runErr
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if len(args.Paths) == 0 {
		return ErrNoPaths
	}

	mode, err := m.ParseMatchMode(string(args.Mode))
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	transformer := NewTransformer(WithMatchMode(mode))
	outcomes, runErr := w.processAll(ctx, transformer, args.Paths, 1, true, false)

	results := make([]m.FileResult, 0, len(outcomes))
	for _, outcome := range outcomes {
		w.DisplayFileResult(ctx, outcome.result)
		results = append(results, outcome.result)
	}

	if err := w.DisplayEstimation(ctx, results); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("display: %w", err))
	}

	if err := w.Close(ctx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("display: %w", err))
	}

	return runErr
}

// processAll runs every path through transformer, at most threads at a time.
// Unless keepGoing is set the first failure cancels the files not yet
// started. Outcomes are returned in path order and only for files that ran.
func (w *workflow) processAll(
	ctx context.Context,
	transformer Transformer,
	paths []m.Path,
	threads int,
	keepGoing bool,
	write bool,
) ([]processed, error) {
	if threads < 1 {
		threads = 1
	}

	outcomes := make([]processed, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, path := range paths {
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return nil
			}

			outcome := w.processFile(groupCtx, transformer, path, write)
			outcomes[i] = outcome

			if outcome.result.Err != nil && !keepGoing {
				return fmt.Errorf("rewrite %s: %w", path, outcome.result.Err)
			}

			return nil
		})
	}

	firstErr := group.Wait()

	done := make([]processed, 0, len(paths))

	var errs []error

	for _, outcome := range outcomes {
		if !outcome.done {
			continue
		}

		done = append(done, outcome)

		if keepGoing && outcome.result.Err != nil {
			errs = append(errs, fmt.Errorf("rewrite %s: %w", outcome.result.Source.Path, outcome.result.Err))
		}
	}

	if firstErr != nil {
		return done, firstErr
	}

	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}

	return done, errors.Join(errs...)
}

func (w *workflow) processFile(ctx context.Context, transformer Transformer, path m.Path, write bool) processed {
	outcome := processed{done: true}
	outcome.result.Source.Path = path

	fullPath, err := w.AbsPath(ctx, path)
	if err != nil {
		outcome.result.Err = err
		return outcome
	}

	outcome.result.Source.FullPath = fullPath

	info, err := w.FileInfo(ctx, fullPath)
	if err != nil {
		slog.Error("Failed to stat file", "path", fullPath, "error", err)
		outcome.result.Err = err

		return outcome
	}

	if !info.Mode().IsRegular() {
		slog.Error("Skipping non-regular file", "path", fullPath, "mode", info.Mode().String())
		outcome.result.Err = ErrNotRegularFile

		return outcome
	}

	content, err := w.ReadFile(ctx, fullPath)
	if err != nil {
		slog.Error("Failed to read file", "path", fullPath, "error", err)
		outcome.result.Err = err

		return outcome
	}

	// The hash describes exactly the bytes that get transformed.
	outcome.result.Source.Hash = adapter.HashContent(content)
	outcome.before = string(content)
	outcome.after, outcome.result.Rewrites = transformer.Transform(outcome.before)

	slog.Debug("Transformed file", "path", fullPath, "rewrites", len(outcome.result.Rewrites))

	if !write || !outcome.result.Changed() {
		return outcome
	}

	if err := w.WriteFile(ctx, fullPath, []byte(outcome.after)); err != nil {
		slog.Error("Failed to write file", "path", fullPath, "error", err)
		outcome.result.Err = err

		return outcome
	}

	outcome.result.Written = true

	return outcome
}
