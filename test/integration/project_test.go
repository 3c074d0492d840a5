package integration

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/danieljhkim/projxml/internal/config"
	"github.com/danieljhkim/projxml/internal/engine"
	"github.com/danieljhkim/projxml/internal/projectdoc"
	"github.com/danieljhkim/projxml/internal/session"
)

func TestSaveOpen_FullCycle(t *testing.T) {
	eng, fs := setupTestEngine(t, nil)

	fs.addFile("/work/a.txt", []byte("alpha\r\nbeta"))
	fs.addFile("/work/latin1.txt", []byte{'c', 'a', 'f', 0xe9})
	fs.addFile("/work/empty.txt", []byte{})
	_ = fs.MkdirAll("/work/dir", 0755)

	added, err := eng.Add(&engine.AddRequest{
		CWD:  "/work",
		Args: []string{"a.txt", "latin1.txt", "dir", "empty.txt", "missing.txt", "a.txt"},
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if added.Added != 5 {
		t.Fatalf("Added = %d, want 5", added.Added)
	}

	saved, err := eng.Save(&engine.SaveRequest{CWD: "/work", Dest: "proj"})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.Path != "/work/proj.xml" {
		t.Errorf("Path = %q, want /work/proj.xml", saved.Path)
	}
	if saved.WithContent != 2 {
		t.Errorf("WithContent = %d, want 2", saved.WithContent)
	}

	data, ok := fs.files["/work/proj.xml"]
	if !ok {
		t.Fatal("expected /work/proj.xml to be written")
	}
	doc, err := projectdoc.Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want := []struct {
		source  string
		content *string
	}{
		{"/work/a.txt", strPtr("alpha\r\nbeta")},
		{"/work/latin1.txt", nil},
		{"/work/dir", nil},
		{"/work/empty.txt", strPtr("")},
		{"/work/missing.txt", nil},
	}
	if len(doc.Documents) != len(want) {
		t.Fatalf("got %d documents, want %d", len(doc.Documents), len(want))
	}
	for i, w := range want {
		got := doc.Documents[i]
		if got.Source != w.source {
			t.Errorf("document %d source = %q, want %q", i, got.Source, w.source)
		}
		if (got.Content == nil) != (w.content == nil) {
			t.Errorf("document %d content presence = %v, want %v", i, got.Content != nil, w.content != nil)
			continue
		}
		if w.content != nil && *got.Content != *w.content {
			t.Errorf("document %d content = %q, want %q", i, *got.Content, *w.content)
		}
	}

	opened, err := eng.Open(&engine.OpenRequest{Session: "copy", CWD: "/work", Source: "proj.xml"})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if opened.Loaded != len(want) {
		t.Errorf("Loaded = %d, want %d", opened.Loaded, len(want))
	}

	listed, err := eng.List("copy")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	for i, entry := range listed.Entries {
		if entry.Path != want[i].source {
			t.Errorf("entry %d = %q, want %q", i, entry.Path, want[i].source)
		}
	}
}

func TestSave_UnwritableDestination(t *testing.T) {
	eng, fs := setupTestEngine(t, nil)

	fs.addFile("/work/a.txt", []byte("alpha"))
	fs.readOnly["/locked"] = true

	if _, err := eng.Add(&engine.AddRequest{CWD: "/work", Args: []string{"a.txt"}}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	_, err := eng.Save(&engine.SaveRequest{CWD: "/work", Dest: "/locked/p.xml"})
	if !errors.Is(err, engine.ErrExportIO) {
		t.Fatalf("Save() error = %v, want ErrExportIO", err)
	}
	var ioErr *engine.ExportIOError
	if !errors.As(err, &ioErr) || ioErr.Path != "/locked/p.xml" {
		t.Errorf("expected *ExportIOError for /locked/p.xml, got %v", err)
	}
	if _, ok := fs.files["/locked/p.xml"]; ok {
		t.Error("expected no document to be written")
	}

	listed, err := eng.List("")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(listed.Entries) != 1 {
		t.Errorf("session has %d entries after failed save, want 1", len(listed.Entries))
	}
	if listed.LastDocument != "" {
		t.Errorf("LastDocument = %q, want empty", listed.LastDocument)
	}
}

func TestOpen_ImportModes(t *testing.T) {
	tests := []struct {
		name        string
		mode        string
		destructive bool
		wantLeft    int
	}{
		{"staged keeps list", config.ImportStaged, false, 1},
		{"destructive flag clears list", config.ImportStaged, true, 0},
		{"destructive setting clears list", config.ImportDestructive, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := config.DefaultSettings()
			settings.ImportMode = tt.mode
			eng, fs := setupTestEngine(t, settings)

			fs.addFile("/work/a.txt", []byte("alpha"))
			fs.addFile("/work/bad.xml", []byte("<workspace><document/></workspace>"))

			if _, err := eng.Add(&engine.AddRequest{CWD: "/work", Args: []string{"a.txt"}}); err != nil {
				t.Fatalf("Add() error = %v", err)
			}

			_, err := eng.Open(&engine.OpenRequest{CWD: "/work", Source: "bad.xml", Destructive: tt.destructive})
			if !errors.Is(err, engine.ErrImportParse) {
				t.Fatalf("Open() error = %v, want ErrImportParse", err)
			}

			listed, err := eng.List("")
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(listed.Entries) != tt.wantLeft {
				t.Errorf("session has %d entries, want %d", len(listed.Entries), tt.wantLeft)
			}
		})
	}
}

func TestSession_PersistedState(t *testing.T) {
	eng, fs := setupTestEngine(t, nil)

	fs.addFile("/work/a.txt", []byte("alpha"))
	if _, err := eng.Add(&engine.AddRequest{Session: "notes", CWD: "/work", Args: []string{"a.txt"}}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := eng.Save(&engine.SaveRequest{Session: "notes", CWD: "/work"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, ok := fs.files["/data/sessions/notes.json"]
	if !ok {
		t.Fatal("expected session file to be written")
	}
	var state session.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		t.Fatalf("invalid session JSON: %v", err)
	}

	if state.SchemaVersion != session.SchemaVersion {
		t.Errorf("SchemaVersion = %d, want %d", state.SchemaVersion, session.SchemaVersion)
	}
	if state.Name != "notes" {
		t.Errorf("Name = %q, want notes", state.Name)
	}
	if len(state.Paths) != 1 || state.Paths[0] != "/work/a.txt" {
		t.Errorf("Paths = %v, want [/work/a.txt]", state.Paths)
	}
	if state.LastDocument != "/work/project.xml" {
		t.Errorf("LastDocument = %q, want /work/project.xml", state.LastDocument)
	}
	if !state.UpdatedAt.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Errorf("UpdatedAt = %v", state.UpdatedAt)
	}
	if !strings.Contains(string(fs.files["/work/project.xml"]), "<document_content>alpha</document_content>") {
		t.Error("expected exported content in /work/project.xml")
	}
}

func strPtr(s string) *string {
	return &s
}

func TestAdd_GlobThroughFS(t *testing.T) {
	eng, fs := setupTestEngine(t, nil)

	fs.addFile("/work/src/main.go", []byte("package main"))
	fs.addFile("/work/src/util/strings.go", []byte("package util"))
	fs.addFile("/work/src/README.md", []byte("# readme"))
	_ = fs.MkdirAll("/work/src/empty.go", 0755)

	result, err := eng.Add(&engine.AddRequest{
		CWD:  "/work",
		Args: []string{"src/**/*.go", "docs/*.txt"},
		Glob: true,
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	got := append([]string(nil), result.Candidates...)
	sort.Strings(got)
	if strings.Join(got, ",") != "/work/src/main.go,/work/src/util/strings.go" {
		t.Errorf("Candidates = %v, want main.go and util/strings.go", result.Candidates)
	}
	if len(result.Unmatched) != 1 || result.Unmatched[0] != "docs/*.txt" {
		t.Errorf("Unmatched = %v, want [docs/*.txt]", result.Unmatched)
	}
}

func TestSessions_ListThroughFS(t *testing.T) {
	eng, fs := setupTestEngine(t, nil)

	fs.addFile("/work/a.txt", []byte("alpha"))
	for _, name := range []string{"zeta", "alpha"} {
		if _, err := eng.Add(&engine.AddRequest{Session: name, CWD: "/work", Args: []string{"a.txt"}}); err != nil {
			t.Fatalf("Add(%s) error = %v", name, err)
		}
	}
	fs.addFile("/data/sessions/.projxml-tmp-123", []byte("{}"))

	names, err := eng.ListSessions()
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if strings.Join(names, ",") != "alpha,zeta" {
		t.Errorf("ListSessions() = %v, want [alpha zeta]", names)
	}

	if err := eng.DeleteSession("zeta"); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	names, _ = eng.ListSessions()
	if strings.Join(names, ",") != "alpha" {
		t.Errorf("ListSessions() after delete = %v, want [alpha]", names)
	}
}
