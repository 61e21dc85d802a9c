package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/Wattsy2020/cpp-learning/internal/model"
)

// ReportStore persists the outcome of a rewrite run.
type ReportStore interface {
	SaveReport(ctx context.Context, path m.Path, report m.Report) error
	LoadReport(ctx context.Context, path m.Path) (m.Report, error)
}

// LocalReportStore writes reports as YAML documents.
type LocalReportStore struct{}

// NewReportStore creates a ReportStore backed by the local filesystem.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type reportYAML struct {
	Version   int        `yaml:"version"`
	Generated time.Time  `yaml:"generated"`
	Mode      string     `yaml:"mode"`
	DryRun    bool       `yaml:"dry_run"`
	Files     []fileYAML `yaml:"files"`
	Totals    totalsYAML `yaml:"totals"`
}

type totalsYAML struct {
	Files int `yaml:"files"`
	Lines int `yaml:"lines"`
}

type fileYAML struct {
	Path     string        `yaml:"path"`
	FullPath string        `yaml:"full_path,omitempty"`
	Hash     string        `yaml:"hash,omitempty"`
	Written  bool          `yaml:"written"`
	Error    string        `yaml:"error,omitempty"`
	Rewrites []rewriteYAML `yaml:"rewrites,omitempty"`
}

type rewriteYAML struct {
	Line        int    `yaml:"line"`
	Original    string `yaml:"original"`
	Replacement string `yaml:"replacement"`
}

// SaveReport writes report to path, creating parent directories as needed.
func (rs *LocalReportStore) SaveReport(ctx context.Context, path m.Path, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if path == "" {
		return errors.New("report path is empty")
	}

	data, err := yaml.Marshal(toReportYAML(report))
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// LoadReport reads a report written by SaveReport. File errors are restored
// as plain error values carrying the recorded message.
func (rs *LocalReportStore) LoadReport(ctx context.Context, path m.Path) (m.Report, error) {
	if err := ctx.Err(); err != nil {
		return m.Report{}, err
	}

	// #nosec G304 - path is the report location chosen by the user
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Report{}, fmt.Errorf("read report: %w", err)
	}

	var decoded reportYAML
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return m.Report{}, fmt.Errorf("unmarshal report: %w", err)
	}

	return fromReportYAML(decoded), nil
}

func toReportYAML(report m.Report) reportYAML {
	files := make([]fileYAML, 0, len(report.Files))

	for _, file := range report.Files {
		entry := fileYAML{
			Path:     string(file.Source.Path),
			FullPath: string(file.Source.FullPath),
			Hash:     file.Source.Hash,
			Written:  file.Written,
		}

		if file.Err != nil {
			entry.Error = file.Err.Error()
		}

		for _, rewrite := range file.Rewrites {
			entry.Rewrites = append(entry.Rewrites, rewriteYAML{
				Line:        rewrite.Line,
				Original:    string(rewrite.Original),
				Replacement: string(rewrite.Replacement),
			})
		}

		files = append(files, entry)
	}

	changedFiles, lines := report.Totals()

	return reportYAML{
		Version:   report.Version,
		Generated: report.Generated,
		Mode:      string(report.Mode),
		DryRun:    report.DryRun,
		Files:     files,
		Totals:    totalsYAML{Files: changedFiles, Lines: lines},
	}
}

func fromReportYAML(decoded reportYAML) m.Report {
	report := m.Report{
		Version:   decoded.Version,
		Generated: decoded.Generated,
		Mode:      m.MatchMode(decoded.Mode),
		DryRun:    decoded.DryRun,
		Files:     make([]m.FileResult, 0, len(decoded.Files)),
	}

	for _, entry := range decoded.Files {
		file := m.FileResult{
			Source: m.File{
				Path:     m.Path(entry.Path),
				FullPath: m.Path(entry.FullPath),
				Hash:     entry.Hash,
			},
			Written: entry.Written,
		}

		if entry.Error != "" {
			file.Err = errors.New(entry.Error)
		}

		for _, rewrite := range entry.Rewrites {
			file.Rewrites = append(file.Rewrites, m.Rewrite{
				Line:        rewrite.Line,
				Original:    m.Line(rewrite.Original),
				Replacement: m.Line(rewrite.Replacement),
			})
		}

		report.Files = append(report.Files, file)
	}

	return report
}
