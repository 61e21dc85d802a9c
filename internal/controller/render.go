package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"

	m "github.com/Wattsy2020/cpp-learning/internal/model"
)

const diffContextLines = 3

// renderUnifiedDiff returns a unified diff between before and after, or an
// empty string when they are equal.
func renderUnifiedDiff(path m.Path, before, after string) (string, error) {
	if before == after {
		return "", nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + string(path),
		ToFile:   "b/" + string(path),
		Context:  diffContextLines,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("render diff for %s: %w", path, err)
	}

	return text, nil
}

func renderEstimationTable(results []m.FileResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Assertions"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, result := range results {
		count := fmt.Sprintf("%d", len(result.Rewrites))
		if result.Err != nil {
			count = "error"
		}

		table.Append([]string{string(result.Source.Path), count})

		total += len(result.Rewrites)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		fmt.Sprintf("%d", total),
	})

	table.Render()

	return tableBuffer.String()
}

func renderSummaryTable(report m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Rewritten", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, result := range report.Files {
		table.Append([]string{
			string(result.Source.Path),
			fmt.Sprintf("%d", len(result.Rewrites)),
			fileStatus(result, report.DryRun),
		})
	}

	files, lines := report.Totals()
	table.SetFooter([]string{
		fmt.Sprintf("Changed Files %d/%d", files, len(report.Files)),
		fmt.Sprintf("%d", lines),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func fileStatus(result m.FileResult, dryRun bool) string {
	switch {
	case result.Err != nil:
		return "failed"
	case !result.Changed():
		return "unchanged"
	case result.Written:
		return "written"
	case dryRun:
		return "would rewrite"
	}

	return "skipped"
}
