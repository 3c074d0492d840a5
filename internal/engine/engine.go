// Package engine provides the core logic for projxml operations.
//
// The engine package sits between CLI commands and the lower-level packages.
// FileSetStore holds the file set and converts it to and from XML project
// documents; Engine loads and persists the CLI's working session around each
// command.
//
// Key components:
//   - FileSetStore: add/remove/clear plus ExportXML/ImportXML
//   - Engine: session orchestration and one method per CLI command
//   - ResolveCandidates: turns command arguments into absolute paths
package engine

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/danieljhkim/projxml/internal/config"
	"github.com/danieljhkim/projxml/internal/fsops"
	"github.com/danieljhkim/projxml/internal/logging"
	"github.com/danieljhkim/projxml/internal/session"
)

// Engine orchestrates all projxml operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs       fsops.FS
	sessions session.SessionStore
	settings config.Settings
	log      *logrus.Logger
	now      func() time.Time
}

// New creates a new Engine with the given dependencies.
// A nil logger discards output; a nil now uses time.Now.
func New(
	fs fsops.FS,
	sessions session.SessionStore,
	settings config.Settings,
	log *logrus.Logger,
	now func() time.Time,
) *Engine {
	if log == nil {
		log = logging.Discard()
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{
		fs:       fs,
		sessions: sessions,
		settings: settings,
		log:      log,
		now:      now,
	}
}

// Settings returns the engine's effective settings.
func (e *Engine) Settings() config.Settings {
	return e.settings
}

// Session is a working file set loaded from the session store.
type Session struct {
	// Name is the session name
	Name string

	// Store holds the session's paths
	Store *FileSetStore

	state *session.SessionState
}

// LastDocument returns the XML document most recently saved or opened.
func (s *Session) LastDocument() string {
	return s.state.LastDocument
}

// sessionName applies the configured default to an empty name.
func (e *Engine) sessionName(name string) string {
	if name == "" {
		return e.settings.DefaultSession
	}
	return name
}

// newStore creates a FileSetStore configured from settings.
func (e *Engine) newStore(importMode string) *FileSetStore {
	if importMode == "" {
		importMode = e.settings.ImportMode
	}
	return NewFileSetStore(e.fs, StoreOptions{
		MaxContentBytes: e.settings.MaxContentBytes,
		ImportMode:      importMode,
	}, e.log)
}

// OpenSession loads the named session, or starts an empty one if it has
// never been saved.
func (e *Engine) OpenSession(name string) (*Session, error) {
	return e.openSession(name, "")
}

func (e *Engine) openSession(name, importMode string) (*Session, error) {
	name = e.sessionName(name)

	state, err := e.sessions.Load(name)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load session %s: %w", name, err)
		}
		state = session.NewSessionState(name, e.now())
	}

	store := e.newStore(importMode)
	store.AddPaths(state.Paths)

	return &Session{
		Name:  name,
		Store: store,
		state: state,
	}, nil
}

// Commit persists the session's current paths.
func (e *Engine) Commit(s *Session) error {
	s.state.Name = s.Name
	s.state.Paths = s.Store.Paths()
	s.state.UpdatedAt = e.now()

	if err := e.sessions.Save(s.Name, s.state); err != nil {
		return fmt.Errorf("failed to save session %s: %w", s.Name, err)
	}

	e.log.WithFields(logrus.Fields{
		"session": s.Name,
		"paths":   len(s.state.Paths),
	}).Debug("session saved")

	return nil
}

// ListSessions returns the names of all saved sessions.
func (e *Engine) ListSessions() ([]string, error) {
	return e.sessions.List()
}

// DeleteSession removes a saved session.
func (e *Engine) DeleteSession(name string) error {
	return e.sessions.Delete(e.sessionName(name))
}
