package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/danieljhkim/projxml/internal/fsops"
)

// ErrInvalidName is returned for session names that are not safe file names.
var ErrInvalidName = errors.New("invalid session name")

// SessionStore provides an interface for persisting working sessions.
type SessionStore interface {
	// Load loads the session with the given name.
	// Returns os.ErrNotExist if the session doesn't exist.
	Load(name string) (*SessionState, error)

	// Save saves the session atomically.
	Save(name string, state *SessionState) error

	// Delete deletes the session file. Deleting a missing session is not an error.
	Delete(name string) error

	// List returns the names of all saved sessions, sorted.
	List() ([]string, error)
}

// FileSessionStore implements SessionStore using JSON files on disk.
type FileSessionStore struct {
	fs          fsops.FS
	sessionsDir string
}

// NewFileSessionStore creates a new FileSessionStore.
func NewFileSessionStore(fs fsops.FS, sessionsDir string) *FileSessionStore {
	return &FileSessionStore{
		fs:          fs,
		sessionsDir: sessionsDir,
	}
}

func (s *FileSessionStore) path(name string) (string, error) {
	if err := s.fs.ValidateIdentifier(name); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	return filepath.Join(s.sessionsDir, name+".json"), nil
}

// Load loads the session with the given name.
func (s *FileSessionStore) Load(name string) (*SessionState, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var state SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if state.SchemaVersion > SchemaVersion {
		return nil, fmt.Errorf("session %s has schema version %d, newest supported is %d", name, state.SchemaVersion, SchemaVersion)
	}
	if state.Paths == nil {
		state.Paths = []string{}
	}

	return &state, nil
}

// Save saves the session atomically.
func (s *FileSessionStore) Save(name string, state *SessionState) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.fs.AtomicWrite(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	return nil
}

// Delete deletes the session file.
func (s *FileSessionStore) Delete(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	if err := s.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// List returns the names of all saved sessions, sorted.
func (s *FileSessionStore) List() ([]string, error) {
	entries, err := s.fs.ReadDir(s.sessionsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read sessions directory: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if name, ok := strings.CutSuffix(entry.Name(), ".json"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return names, nil
}
