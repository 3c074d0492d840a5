package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danieljhkim/projxml/internal/config"
	"github.com/danieljhkim/projxml/internal/engine"
	"github.com/danieljhkim/projxml/internal/fsops"
	"github.com/danieljhkim/projxml/internal/logging"
	"github.com/danieljhkim/projxml/internal/session"
)

// loadConfig returns the data paths and settings for this invocation.
func loadConfig() (*config.Paths, *config.Settings, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	settings, err := config.LoadSettings(paths.Config)
	if err != nil {
		return nil, nil, err
	}

	return paths, settings, nil
}

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() (*engine.Engine, error) {
	paths, settings, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	fs := fsops.NewRealFS()
	sessions := session.NewFileSessionStore(fs, paths.Sessions)
	logger := logging.New(os.Stderr, verbose)

	return engine.New(fs, sessions, *settings, logger, nil), nil
}

// workingDir returns the directory relative paths are resolved against.
func workingDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return cwd, nil
}

// formatJSON formats a value as JSON.
func formatJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON outputs a value as JSON to the command's stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(out())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
