package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "github.com/Wattsy2020/cpp-learning/internal/model"
)

func sampleReport() m.Report {
	return m.Report{
		Version:   1,
		Generated: time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC),
		Mode:      m.MatchGreedy,
		DryRun:    true,
		Files: []m.FileResult{
			{
				Source: m.File{Path: "bst.cc", FullPath: "/src/bst.cc", Hash: "abc123"},
				Rewrites: []m.Rewrite{
					{Line: 68, Original: "    assert(result == (v));", Replacement: "ctest::assert_equal(result, v);"},
				},
			},
			{
				Source: m.File{Path: "missing.cc"},
				Err:    errors.New("open missing.cc: no such file or directory"),
			},
		},
	}
}

func TestLocalReportStore_SaveReport_WritesYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "report.yaml")
	rs := &LocalReportStore{}

	require.NoError(t, rs.SaveReport(context.Background(), m.Path(path), sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded reportYAML
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	assert.Equal(t, 1, decoded.Version)
	assert.Equal(t, "greedy", decoded.Mode)
	assert.True(t, decoded.DryRun)
	require.Len(t, decoded.Files, 2)
	assert.Equal(t, "bst.cc", decoded.Files[0].Path)
	assert.Equal(t, "abc123", decoded.Files[0].Hash)
	require.Len(t, decoded.Files[0].Rewrites, 1)
	assert.Equal(t, 68, decoded.Files[0].Rewrites[0].Line)
	assert.Equal(t, "ctest::assert_equal(result, v);", decoded.Files[0].Rewrites[0].Replacement)
	assert.Equal(t, "open missing.cc: no such file or directory", decoded.Files[1].Error)
	assert.Empty(t, decoded.Files[1].Rewrites)
	assert.Equal(t, totalsYAML{Files: 1, Lines: 1}, decoded.Totals)
}

func TestLocalReportStore_RoundTrip(t *testing.T) {
	t.Parallel()

	path := m.Path(filepath.Join(t.TempDir(), "report.yaml"))
	rs := NewReportStore()
	want := sampleReport()

	require.NoError(t, rs.SaveReport(context.Background(), path, want))

	got, err := rs.LoadReport(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, want.Version, got.Version)
	assert.True(t, want.Generated.Equal(got.Generated))
	assert.Equal(t, want.Mode, got.Mode)
	assert.Equal(t, want.DryRun, got.DryRun)
	require.Len(t, got.Files, 2)
	assert.Equal(t, want.Files[0].Source, got.Files[0].Source)
	assert.Equal(t, want.Files[0].Rewrites, got.Files[0].Rewrites)
	require.Error(t, got.Files[1].Err)
	assert.Equal(t, want.Files[1].Err.Error(), got.Files[1].Err.Error())
}

func TestLocalReportStore_SaveReport_EmptyPath(t *testing.T) {
	t.Parallel()

	err := NewReportStore().SaveReport(context.Background(), "", sampleReport())
	require.Error(t, err)
}

func TestLocalReportStore_LoadReport_Missing(t *testing.T) {
	t.Parallel()

	_, err := NewReportStore().LoadReport(context.Background(), m.Path(filepath.Join(t.TempDir(), "none.yaml")))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalReportStore_LoadReport_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("files: [unterminated"), 0o600))

	_, err := NewReportStore().LoadReport(context.Background(), m.Path(path))
	require.Error(t, err)
}

func TestLocalReportStore_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := m.Path(filepath.Join(t.TempDir(), "report.yaml"))
	rs := NewReportStore()

	require.ErrorIs(t, rs.SaveReport(ctx, path, sampleReport()), context.Canceled)

	_, err := rs.LoadReport(ctx, path)
	require.ErrorIs(t, err, context.Canceled)
}
