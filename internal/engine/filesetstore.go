package engine

import (
	"errors"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/danieljhkim/projxml/internal/config"
	"github.com/danieljhkim/projxml/internal/fileset"
	"github.com/danieljhkim/projxml/internal/fsops"
	"github.com/danieljhkim/projxml/internal/logging"
	"github.com/danieljhkim/projxml/internal/projectdoc"
)

// Reasons a file's text is left out of an exported document.
var (
	errNotRegular = errors.New("not a regular file")
	errTooLarge   = errors.New("file too large")
	errNotUTF8    = errors.New("not valid UTF-8 text")
)

// StoreOptions controls export and import behavior of a FileSetStore.
type StoreOptions struct {
	// MaxContentBytes: only files strictly smaller than this embed their text
	MaxContentBytes int64

	// ImportMode is config.ImportStaged or config.ImportDestructive
	ImportMode string

	// Atomic writes exported documents via temp file + rename
	Atomic bool
}

// DefaultStoreOptions returns the options matching config.DefaultSettings.
func DefaultStoreOptions() StoreOptions {
	return StoreOptions{
		MaxContentBytes: config.DefaultMaxContentBytes,
		ImportMode:      config.ImportStaged,
	}
}

// FileSetStore owns an ordered set of unique file paths and converts it to and
// from XML project documents.
type FileSetStore struct {
	set  fileset.Set
	fs   fsops.FS
	opts StoreOptions
	log  logrus.FieldLogger
}

// NewFileSetStore creates an empty store. A nil logger discards output.
func NewFileSetStore(fs fsops.FS, opts StoreOptions, log logrus.FieldLogger) *FileSetStore {
	if log == nil {
		log = logging.Discard()
	}
	if opts.MaxContentBytes <= 0 {
		opts.MaxContentBytes = config.DefaultMaxContentBytes
	}
	if opts.ImportMode == "" {
		opts.ImportMode = config.ImportStaged
	}
	return &FileSetStore{
		fs:   fs,
		opts: opts,
		log:  log,
	}
}

// Options returns the store's effective options.
func (s *FileSetStore) Options() StoreOptions {
	return s.opts
}

// AddPaths inserts every candidate not already present and returns the number
// of newly added paths.
func (s *FileSetStore) AddPaths(candidates []string) int {
	return s.set.Add(candidates...)
}

// RemovePaths removes the given paths and returns how many were present.
func (s *FileSetStore) RemovePaths(paths []string) int {
	return s.set.Remove(paths...)
}

// Clear empties the store.
func (s *FileSetStore) Clear() {
	s.set.Clear()
}

// Paths returns the stored paths in insertion order.
func (s *FileSetStore) Paths() []string {
	return s.set.Paths()
}

// Len returns the number of stored paths.
func (s *FileSetStore) Len() int {
	return s.set.Len()
}

// Contains reports whether path is stored.
func (s *FileSetStore) Contains(path string) bool {
	return s.set.Contains(path)
}

// Inspection describes whether a path's text would be embedded on export.
type Inspection struct {
	Path       string `json:"path"`
	Exists     bool   `json:"exists"`
	Size       int64  `json:"size"`
	Embeddable bool   `json:"embeddable"`
	Reason     string `json:"reason,omitempty"`
}

// Inspect reports what export would do with path's content.
func (s *FileSetStore) Inspect(path string) Inspection {
	in := Inspection{Path: path}

	info, err := s.fs.Stat(path)
	if err == nil {
		in.Exists = true
		in.Size = info.Size()
	}

	if _, err := s.readContent(path); err != nil {
		in.Reason = err.Error()
		return in
	}
	in.Embeddable = true
	return in
}

// readContent returns the text of path if it is a regular file smaller than
// the content limit holding valid UTF-8.
func (s *FileSetStore) readContent(path string) (string, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", errNotRegular
	}
	if info.Size() >= s.opts.MaxContentBytes {
		return "", errTooLarge
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return "", err
	}
	// The file may have grown since Stat
	if int64(len(data)) >= s.opts.MaxContentBytes {
		return "", errTooLarge
	}
	if !utf8.Valid(data) {
		return "", errNotUTF8
	}

	return string(data), nil
}

// Document builds the project document an export would write, in insertion
// order. Content read failures degrade the entry to source-only.
func (s *FileSetStore) Document() *projectdoc.Project {
	paths := s.set.Paths()
	doc := &projectdoc.Project{
		Documents: make([]projectdoc.Document, 0, len(paths)),
	}

	for _, path := range paths {
		entry := projectdoc.Document{Source: path}

		content, err := s.readContent(path)
		if err != nil {
			s.log.WithField("path", path).WithError(err).Debug("content skipped")
		} else {
			entry.Content = &content
		}

		doc.Documents = append(doc.Documents, entry)
	}

	return doc
}

// ExportXML writes the store to dest as a project document.
// Returns ErrEmptyStore when there is nothing to write, or an *ExportIOError
// when dest cannot be written. The store is never modified.
func (s *FileSetStore) ExportXML(dest string) error {
	_, err := s.export(dest)
	return err
}

// export writes the document and returns what was written.
func (s *FileSetStore) export(dest string) (*projectdoc.Project, error) {
	if s.set.Len() == 0 {
		return nil, ErrEmptyStore
	}

	doc := s.Document()
	data, err := projectdoc.Marshal(doc)
	if err != nil {
		return nil, &ExportIOError{Path: dest, Err: err}
	}

	if s.opts.Atomic {
		err = s.fs.AtomicWrite(dest, data, 0644)
	} else {
		err = s.fs.WriteFile(dest, data, 0644)
	}
	if err != nil {
		return nil, &ExportIOError{Path: dest, Err: err}
	}

	s.log.WithFields(logrus.Fields{
		"path":      dest,
		"documents": len(doc.Documents),
		"bytes":     len(data),
	}).Debug("project exported")

	return doc, nil
}

// ImportXML replaces the store's contents with the sources listed in the
// project document at src and returns the resulting number of paths.
//
// In staged mode a failure leaves the store untouched. In destructive mode the
// store is cleared before reading, so a failure leaves it empty.
func (s *FileSetStore) ImportXML(src string) (int, error) {
	if s.opts.ImportMode == config.ImportDestructive {
		s.set.Clear()
	}

	data, err := s.fs.ReadFile(src)
	if err != nil {
		return 0, &ImportParseError{Path: src, Err: err}
	}

	doc, err := projectdoc.Unmarshal(data)
	if err != nil {
		return 0, &ImportParseError{Path: src, Err: err}
	}

	staging := fileset.New(doc.Sources()...)
	skipped := len(doc.Documents) - staging.Len()
	s.set.Replace(staging)

	s.log.WithFields(logrus.Fields{
		"path":    src,
		"loaded":  s.set.Len(),
		"skipped": skipped,
	}).Debug("project imported")

	return s.set.Len(), nil
}
