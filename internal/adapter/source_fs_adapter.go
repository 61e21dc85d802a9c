// Package adapter contains infrastructure adapters used by the rewrite workflow.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/Wattsy2020/cpp-learning/internal/model"
)

// defaultFilePerm is used when a file is written that did not exist before.
const defaultFilePerm os.FileMode = 0o644

// SourceFSAdapter abstracts filesystem operations so the workflow can be
// tested without touching the disk.
type SourceFSAdapter interface {
	// AbsPath resolves path against the working directory.
	AbsPath(ctx context.Context, path m.Path) (m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile replaces the contents of path, keeping its permissions.
	WriteFile(ctx context.Context, path m.Path, content []byte) error

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)
}

// LocalSourceFSAdapter implements SourceFSAdapter on top of the os package.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// AbsPath returns the absolute form of path.
func (a *LocalSourceFSAdapter) AbsPath(ctx context.Context, path m.Path) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - rewriting user-selected files is the point of the tool
	return os.ReadFile(string(path))
}

// WriteFile overwrites path. Existing files keep their mode.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	perm := defaultFilePerm

	info, err := os.Stat(string(path))
	switch {
	case err == nil:
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}

		perm = info.Mode().Perm()
	case !os.IsNotExist(err):
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// HashContent returns the hex SHA-256 fingerprint of content.
func HashContent(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}
