package engine

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/danieljhkim/projxml/internal/fsops"
)

// Resolution is the outcome of turning command arguments into paths.
type Resolution struct {
	// Paths are absolute, cleaned candidate paths in argument order
	Paths []string

	// Unmatched lists glob patterns that matched no files
	Unmatched []string
}

// ResolveCandidates makes each argument absolute relative to cwd. When glob is
// set, arguments containing glob characters are expanded with doublestar
// (supporting **) to the regular files they match, unless a file with that
// literal name exists.
func (e *Engine) ResolveCandidates(cwd string, args []string, glob bool) (*Resolution, error) {
	res := &Resolution{Paths: []string{}}

	for _, arg := range args {
		if arg == "" {
			continue
		}
		abs := absPath(cwd, arg)

		if !glob || !containsGlob(arg) {
			res.Paths = append(res.Paths, abs)
			continue
		}

		// A literal file whose name happens to contain glob characters wins
		if exists, err := e.fs.Exists(abs); err == nil && exists {
			res.Paths = append(res.Paths, abs)
			continue
		}

		matches, err := e.expandGlob(abs)
		if err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", arg, err)
		}
		if len(matches) == 0 {
			res.Unmatched = append(res.Unmatched, arg)
			continue
		}
		res.Paths = append(res.Paths, matches...)
	}

	return res, nil
}

// expandGlob returns the regular files matching an absolute pattern. The
// pattern is split at its first meta character and matched under that base
// directory through the engine's filesystem.
func (e *Engine) expandGlob(pattern string) ([]string, error) {
	base, rel := doublestar.SplitPattern(filepath.ToSlash(pattern))
	base = filepath.FromSlash(base)

	matches, err := doublestar.Glob(fsops.DirFS(e.fs, base), rel)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		match := filepath.Join(base, filepath.FromSlash(m))
		info, err := e.fs.Stat(match)
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() {
			files = append(files, match)
		}
	}

	e.log.WithField("pattern", pattern).Debugf("glob matched %d files", len(files))
	return files, nil
}

// containsGlob checks if a pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
