// Package fsops provides the filesystem operations projxml relies on.
//
// Reads of listed files, writes of project documents and session state all go
// through the FS interface so tests can substitute an in-memory implementation.
// Project documents are written in place; session files are replaced
// atomically through a temp file in the same directory.
package fsops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TempPrefix names the temp files AtomicWrite creates next to its target.
const TempPrefix = ".projxml-tmp-"

// FS provides an abstraction for filesystem operations.
type FS interface {
	// Stat returns file info, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile creates or truncates path and writes data to it.
	WriteFile(path string, data []byte, perm os.FileMode) error

	// AtomicWrite replaces path with data via temp file + rename,
	// creating the parent directory if needed.
	AtomicWrite(path string, data []byte, perm os.FileMode) error

	// ReadDir lists a directory, sorted by file name.
	ReadDir(path string) ([]os.DirEntry, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// Remove removes a file or empty directory.
	Remove(path string) error

	// Exists reports whether anything is present at path.
	Exists(path string) (bool, error)

	// ValidateIdentifier checks that id can be used as a single file name.
	ValidateIdentifier(id string) error
}

// RealFS implements FS on the host filesystem.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

func (fs *RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (fs *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to path, truncating any existing file. The parent
// directory must already exist.
func (fs *RealFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// AtomicWrite writes data next to path and renames it into place, so readers
// see either the old or the new contents.
func (fs *RealFS) AtomicWrite(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, TempPrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func (fs *RealFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

func (fs *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (fs *RealFS) Remove(path string) error {
	return os.Remove(path)
}

// Exists uses Lstat, so a dangling symlink still counts as present.
func (fs *RealFS) Exists(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ValidateIdentifier rejects names that would escape or alias the directory
// they are joined to: empty names, separators, "." and names starting with "..".
func (fs *RealFS) ValidateIdentifier(id string) error {
	switch {
	case id == "":
		return errors.New("invalid identifier: empty")
	case strings.ContainsAny(id, `/\`) || strings.ContainsRune(id, filepath.Separator):
		return fmt.Errorf("invalid identifier %q: must not contain path separators", id)
	case id == "." || strings.HasPrefix(id, ".."):
		return fmt.Errorf("invalid identifier %q: path traversal not allowed", id)
	}
	return nil
}
