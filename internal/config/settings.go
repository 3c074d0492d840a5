package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMaxContentBytes is the exclusive upper bound on the size of a file
// whose text is embedded in an exported document.
const DefaultMaxContentBytes int64 = 1 << 20

// Import modes.
const (
	// ImportStaged parses into a staging set and only replaces the live set on success.
	ImportStaged = "staged"

	// ImportDestructive clears the live set before parsing.
	ImportDestructive = "destructive"
)

// Settings holds user-tunable behavior read from config.yaml.
type Settings struct {
	// MaxContentBytes: files of this size or larger are exported without content
	MaxContentBytes int64 `yaml:"maxContentBytes" json:"maxContentBytes"`

	// ImportMode is "staged" or "destructive"
	ImportMode string `yaml:"importMode" json:"importMode"`

	// DefaultSession names the session used when --session is not given
	DefaultSession string `yaml:"defaultSession" json:"defaultSession"`

	// ExpandGlobs enables doublestar expansion of add arguments
	ExpandGlobs bool `yaml:"expandGlobs" json:"expandGlobs"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		MaxContentBytes: DefaultMaxContentBytes,
		ImportMode:      ImportStaged,
		DefaultSession:  "default",
		ExpandGlobs:     true,
	}
}

// LoadSettings reads settings from path. A missing file yields the defaults;
// keys absent from the file keep their default values.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return settings, nil
}

// Validate checks that all settings hold usable values.
func (s *Settings) Validate() error {
	if s.MaxContentBytes <= 0 {
		return fmt.Errorf("maxContentBytes must be positive, got %d", s.MaxContentBytes)
	}

	switch s.ImportMode {
	case ImportStaged, ImportDestructive:
	default:
		return fmt.Errorf("importMode must be %q or %q, got %q", ImportStaged, ImportDestructive, s.ImportMode)
	}

	if s.DefaultSession == "" {
		return fmt.Errorf("defaultSession must not be empty")
	}

	return nil
}

// Marshal renders the settings as YAML.
func (s *Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
