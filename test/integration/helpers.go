package integration

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/danieljhkim/projxml/internal/config"
	"github.com/danieljhkim/projxml/internal/engine"
	"github.com/danieljhkim/projxml/internal/fsops"
	"github.com/danieljhkim/projxml/internal/logging"
	"github.com/danieljhkim/projxml/internal/session"
)

var errReadOnly = errors.New("read-only file system")

// testFS is a filesystem implementation that tracks files in memory for testing
type testFS struct {
	files    map[string][]byte
	dirs     map[string]bool
	readOnly map[string]bool
	writes   int
}

func newTestFS() *testFS {
	return &testFS{
		files:    make(map[string][]byte),
		dirs:     make(map[string]bool),
		readOnly: make(map[string]bool),
	}
}

func (fs *testFS) Stat(path string) (os.FileInfo, error) {
	if content, ok := fs.files[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), size: int64(len(content))}, nil
	}
	if fs.dirs[path] {
		return &mockFileInfo{name: filepath.Base(path), isDir: true}, nil
	}
	return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	if content, ok := fs.files[path]; ok {
		return append([]byte(nil), content...), nil
	}
	if fs.dirs[path] {
		return nil, &os.PathError{Op: "read", Path: path, Err: errors.New("is a directory")}
	}
	return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
}

func (fs *testFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	if fs.readOnly[filepath.Dir(path)] {
		return &os.PathError{Op: "open", Path: path, Err: errReadOnly}
	}
	fs.files[path] = append([]byte(nil), data...)
	fs.writes++
	return nil
}

func (fs *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return fs.WriteFile(path, data, perm)
}

func (fs *testFS) ReadDir(path string) ([]os.DirEntry, error) {
	if !fs.dirs[path] {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}

	var entries []os.DirEntry
	for p := range fs.files {
		if filepath.Dir(p) == path {
			info, _ := fs.Stat(p)
			entries = append(entries, iofs.FileInfoToDirEntry(info))
		}
	}
	for p := range fs.dirs {
		if p != path && filepath.Dir(p) == path {
			info, _ := fs.Stat(p)
			entries = append(entries, iofs.FileInfoToDirEntry(info))
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (fs *testFS) MkdirAll(path string, perm os.FileMode) error {
	for p := path; p != filepath.Dir(p); p = filepath.Dir(p) {
		fs.dirs[p] = true
	}
	return nil
}

func (fs *testFS) Remove(path string) error {
	if _, ok := fs.files[path]; !ok {
		return &os.PathError{Op: "remove", Path: path, Err: os.ErrNotExist}
	}
	delete(fs.files, path)
	return nil
}

func (fs *testFS) Exists(path string) (bool, error) {
	_, hasFile := fs.files[path]
	return hasFile || fs.dirs[path], nil
}

func (fs *testFS) ValidateIdentifier(id string) error {
	return fsops.NewRealFS().ValidateIdentifier(id)
}

// addFile creates a file and its parent directories.
func (fs *testFS) addFile(path string, content []byte) {
	_ = fs.MkdirAll(filepath.Dir(path), 0755)
	fs.files[path] = content
}

// mockFileInfo implements os.FileInfo for testing
type mockFileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (m *mockFileInfo) Name() string { return m.name }
func (m *mockFileInfo) Size() int64  { return m.size }
func (m *mockFileInfo) Mode() os.FileMode {
	if m.isDir {
		return os.ModeDir | 0755
	}
	return 0644
}
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

var _ fsops.FS = (*testFS)(nil)

// setupTestEngine wires an engine to an in-memory filesystem, storing sessions
// under /data/sessions.
func setupTestEngine(t *testing.T, settings *config.Settings) (*engine.Engine, *testFS) {
	t.Helper()

	if settings == nil {
		settings = config.DefaultSettings()
	}

	fs := newTestFS()
	sessions := session.NewFileSessionStore(fs, "/data/sessions")
	now := func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	return engine.New(fs, sessions, *settings, logging.Discard(), now), fs
}
