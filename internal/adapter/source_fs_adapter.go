// Package adapter contains the infrastructure adapters used by the fastgen
// workflow: filesystem access, the external generator and ABI parsing.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	m "fastgen.dev/pkg/fastgen/internal/model"
)

// ErrDirectivesNotFound is returned when no directive file exists in the
// start directory or any of its parents.
var ErrDirectivesNotFound = errors.New("directive file not found")

// SourceFSAdapter abstracts the filesystem operations the domain layer needs
// so catalog construction and generation can be tested without touching the
// disk.
type SourceFSAdapter interface {
	// Exists reports whether a regular file or directory exists at path.
	Exists(path m.Path) bool

	// Open opens a file for reading.
	Open(path m.Path) (io.ReadCloser, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// MkdirAll creates path and any missing parents. It succeeds when the
	// directory already exists.
	MkdirAll(path m.Path) error

	// FindDirectivesRoot walks up from start looking for a file called name
	// and returns the directory that contains it.
	FindDirectivesRoot(start m.Path, name string) (m.Path, error)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct {
	dirPerm os.FileMode
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{dirPerm: 0o750}
}

// Exists stats the path and reports whether it is present.
func (a *LocalSourceFSAdapter) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))
	return err == nil
}

// Open opens the file at path.
func (a *LocalSourceFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - directive file path is chosen by the developer running the tool
	return os.Open(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - paths come from the catalog of the local project
	return os.ReadFile(string(path))
}

// MkdirAll creates the directory tree.
func (a *LocalSourceFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), a.dirPerm)
}

// FindDirectivesRoot searches for name walking up the directory tree.
func (a *LocalSourceFSAdapter) FindDirectivesRoot(start m.Path, name string) (m.Path, error) {
	dir, err := filepath.Abs(string(start))
	if err != nil {
		return "", err
	}

	for {
		info, err := os.Stat(filepath.Join(dir, name))
		if err == nil && !info.IsDir() {
			return m.Path(dir), nil
		}

		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: %s in %s or any parent directory", ErrDirectivesNotFound, name, start)
		}

		dir = parent
	}
}
