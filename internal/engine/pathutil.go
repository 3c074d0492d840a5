package engine

import (
	"path/filepath"
	"strings"
)

// DefaultDocumentName is used by save when no destination is given.
const DefaultDocumentName = "project.xml"

// absPath resolves a user-provided path (absolute, relative, or containing "..")
// against cwd and returns it cleaned.
func absPath(cwd, userPath string) string {
	if filepath.IsAbs(userPath) {
		return filepath.Clean(userPath)
	}
	return filepath.Join(cwd, userPath)
}

// documentPath resolves the destination of a save. An empty dest selects
// DefaultDocumentName; a name without an extension gets ".xml" appended.
func documentPath(cwd, dest string) string {
	if dest == "" {
		dest = DefaultDocumentName
	}
	if filepath.Ext(dest) == "" && !strings.HasSuffix(dest, string(filepath.Separator)) {
		dest += ".xml"
	}
	return absPath(cwd, dest)
}
