package engine

import (
	"testing"
)

func TestAbsPath(t *testing.T) {
	tests := []struct {
		name     string
		userPath string
		cwd      string
		want     string
	}{
		{
			name:     "simple relative file",
			userPath: "file.txt",
			cwd:      "/home/me/project",
			want:     "/home/me/project/file.txt",
		},
		{
			name:     "nested relative path",
			userPath: "src/index.ts",
			cwd:      "/home/me/project",
			want:     "/home/me/project/src/index.ts",
		},
		{
			name:     "absolute path is kept",
			userPath: "/etc/hosts",
			cwd:      "/home/me/project",
			want:     "/etc/hosts",
		},
		{
			name:     "absolute path is cleaned",
			userPath: "/etc/./nginx/../hosts",
			cwd:      "/home/me",
			want:     "/etc/hosts",
		},
		{
			name:     "redundant components",
			userPath: "./foo/../bar/baz.txt",
			cwd:      "/home/me/project",
			want:     "/home/me/project/bar/baz.txt",
		},
		{
			name:     "parent directory",
			userPath: "../other/notes.md",
			cwd:      "/home/me/project",
			want:     "/home/me/other/notes.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := absPath(tt.cwd, tt.userPath)
			if got != tt.want {
				t.Errorf("absPath(%q, %q) = %q, want %q", tt.cwd, tt.userPath, got, tt.want)
			}
		})
	}
}

func TestDocumentPath(t *testing.T) {
	tests := []struct {
		name string
		dest string
		want string
	}{
		{name: "default name", dest: "", want: "/work/project.xml"},
		{name: "extension appended", dest: "backup", want: "/work/backup.xml"},
		{name: "existing extension kept", dest: "out.txt", want: "/work/out.txt"},
		{name: "xml extension kept", dest: "docs/p.xml", want: "/work/docs/p.xml"},
		{name: "absolute destination", dest: "/tmp/release", want: "/tmp/release.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := documentPath("/work", tt.dest)
			if got != tt.want {
				t.Errorf("documentPath(%q) = %q, want %q", tt.dest, got, tt.want)
			}
		})
	}
}
