package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	m "github.com/Wattsy2020/cpp-learning/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	fileStyle    = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// TUI implements UI for interactive terminals. Diffs are colored and a
// dry-run preview taller than the terminal is shown in a pager.
type TUI struct {
	output   io.Writer
	height   int
	config   StartConfig
	buffer   strings.Builder
	runPager func(title, content string) error
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}
	t.runPager = t.runTeaPager

	if f, ok := output.(*os.File); ok {
		if _, height, err := term.GetSize(f.Fd()); err == nil {
			t.height = height
		}
	}

	return t
}

// Start initializes the UI.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.config = resolveStartConfig(options)
	t.buffer.Reset()

	return nil
}

// Close flushes buffered preview output, paging it when it does not fit.
func (t *TUI) Close(ctx context.Context) error {
	if t.buffer.Len() == 0 {
		return nil
	}

	content := t.buffer.String()
	t.buffer.Reset()

	if ctx.Err() == nil && t.needsPagination(content) {
		return t.runPager("ctestfmt preview", content)
	}

	_, err := fmt.Fprint(t.output, content)

	return err
}

// DisplayFileResult shows the status of a processed file.
func (t *TUI) DisplayFileResult(ctx context.Context, result m.FileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if t.config.mode == ModeList && result.Err == nil {
		return
	}

	t.emit(formatFileResult(result, t.config.mode == ModePreview) + "\n")
}

// DisplayDiff shows a colored unified diff.
func (t *TUI) DisplayDiff(ctx context.Context, path m.Path, before, after string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	diff, err := renderUnifiedDiff(path, before, after)
	if err != nil {
		return err
	}

	t.emit(colorizeDiff(diff))

	return nil
}

// DisplayEstimation shows the per-file assertion counts.
func (t *TUI) DisplayEstimation(ctx context.Context, results []m.FileResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.emit("\n" + titleStyle.Render("Rewritable assertions") + "\n" + renderEstimationTable(results))

	return nil
}

// DisplaySummary shows the run totals.
func (t *TUI) DisplaySummary(ctx context.Context, report m.Report) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.emit("\n" + titleStyle.Render("Summary") + "\n" + renderSummaryTable(report))
}

// emit writes immediately, or buffers in preview mode so Close can page.
func (t *TUI) emit(text string) {
	if t.config.mode == ModePreview {
		t.buffer.WriteString(text)
		return
	}

	_, _ = fmt.Fprint(t.output, text)
}

func (t *TUI) needsPagination(content string) bool {
	if t.height <= 0 {
		return false
	}

	return strings.Count(content, "\n") >= t.height
}

func (t *TUI) runTeaPager(title, content string) error {
	program := tea.NewProgram(newPagerModel(title, content), tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func formatFileResult(result m.FileResult, dryRun bool) string {
	path := fileStyle.Render(string(result.Source.Path))

	if result.Err != nil {
		return errorStyle.Render("✗ ") + path + " " + errorStyle.Render(result.Err.Error())
	}

	status := fileStatus(result, dryRun)
	count := fmt.Sprintf("(%d assertion(s))", len(result.Rewrites))

	switch {
	case !result.Changed():
		return faintStyle.Render("· ") + path + " " + faintStyle.Render(status)
	case result.Written:
		return successStyle.Render("✓ ") + path + " " + successStyle.Render(status) + " " + count
	default:
		return pendingStyle.Render("~ ") + path + " " + pendingStyle.Render(status) + " " + count
	}
}

func colorizeDiff(diff string) string {
	if diff == "" {
		return ""
	}

	lines := strings.SplitAfter(diff, "\n")

	var b strings.Builder

	for _, line := range lines {
		if line == "" {
			continue
		}

		body := strings.TrimSuffix(line, "\n")
		newline := line[len(body):]

		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			b.WriteString(fileStyle.Render(body))
		case strings.HasPrefix(body, "@@"):
			b.WriteString(hunkStyle.Render(body))
		case strings.HasPrefix(body, "+"):
			b.WriteString(addedStyle.Render(body))
		case strings.HasPrefix(body, "-"):
			b.WriteString(removedStyle.Render(body))
		default:
			b.WriteString(body)
		}

		b.WriteString(newline)
	}

	return b.String()
}
