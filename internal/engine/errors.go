package engine

import (
	"errors"
	"fmt"

	"github.com/danieljhkim/projxml/internal/session"
)

var (
	// ErrEmptyStore indicates an export was attempted with no paths in the set.
	ErrEmptyStore = errors.New("no files to save")

	// ErrExportIO classifies failures writing an exported document.
	ErrExportIO = errors.New("export failed")

	// ErrImportParse classifies failures reading or parsing a project document.
	ErrImportParse = errors.New("import failed")

	// ErrInvalidSession indicates a session name that cannot be used as a file name.
	ErrInvalidSession = session.ErrInvalidName

	// ErrNoCandidates indicates a command was given nothing to add or remove.
	ErrNoCandidates = errors.New("no paths given")
)

// ExportIOError reports that the destination document could not be written.
// The file set itself is never modified by a failed export.
type ExportIOError struct {
	Path string
	Err  error
}

func (e *ExportIOError) Error() string {
	return fmt.Sprintf("failed to save XML to %s: %v", e.Path, e.Err)
}

func (e *ExportIOError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrExportIO) match any ExportIOError.
func (e *ExportIOError) Is(target error) bool { return target == ErrExportIO }

// ImportParseError reports that a project document could not be read or parsed.
type ImportParseError struct {
	Path string
	Err  error
}

func (e *ImportParseError) Error() string {
	return fmt.Sprintf("failed to open XML %s: %v", e.Path, e.Err)
}

func (e *ImportParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrImportParse) match any ImportParseError.
func (e *ImportParseError) Is(target error) bool { return target == ErrImportParse }
