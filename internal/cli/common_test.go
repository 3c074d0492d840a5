package cli

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/danieljhkim/projxml/internal/engine"
)

func TestFormatJSON(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{
			name:  "simple map",
			input: map[string]string{"key": "value"},
			want:  "{\n  \"key\": \"value\"\n}",
		},
		{
			name:  "empty map",
			input: map[string]string{},
			want:  "{}",
		},
		{
			name:  "array",
			input: []string{"a", "b", "c"},
			want:  "[\n  \"a\",\n  \"b\",\n  \"c\"\n]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatJSON(tt.input)
			if err != nil {
				t.Fatalf("formatJSON() error = %v", err)
			}

			var v interface{}
			if err := json.Unmarshal([]byte(got), &v); err != nil {
				t.Errorf("formatJSON() produced invalid JSON: %v", err)
			}
			if got != tt.want {
				t.Errorf("formatJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"plain", os.ErrNotExist, "file does not exist"},
		{"wrapped", &engine.ImportParseError{Path: "/tmp/p.xml", Err: errors.New("boom")}, "/tmp/p.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatError(tt.err)
			if !strings.Contains(got, "Error:") {
				t.Errorf("FormatError() = %q, want an Error: prefix", got)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("FormatError() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}
