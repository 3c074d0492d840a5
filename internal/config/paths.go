// Package config manages projxml configuration and filesystem paths.
//
// The data root defaults to ~/.projxml/ and holds the sessions/ directory and
// an optional config.yaml. The root can be moved with PROJXML_ROOT.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by projxml.
type Paths struct {
	// Root is the base directory for all projxml data (default: ~/.projxml)
	Root string

	// Sessions is the directory containing working session files
	Sessions string

	// Config is the path to the settings file
	Config string
}

// DefaultPaths returns the default paths for projxml.
// Paths can be overridden with environment variables:
// - PROJXML_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("PROJXML_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".projxml")
	}

	return PathsAt(root), nil
}

// PathsAt returns the layout rooted at root.
func PathsAt(root string) *Paths {
	return &Paths{
		Root:     root,
		Sessions: filepath.Join(root, "sessions"),
		Config:   filepath.Join(root, "config.yaml"),
	}
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.Sessions,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
