package projectdoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestEncode_Layout(t *testing.T) {
	p := &Project{
		Documents: []Document{
			{Source: "/src/a.txt", Content: strPtr("hello <world> & co")},
			{Source: "/src/b.bin"},
		},
	}

	data, err := Marshal(p)
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8"?>
<project>
  <document>
    <source>/src/a.txt</source>
    <document_content>hello &lt;world&gt; &amp; co</document_content>
  </document>
  <document>
    <source>/src/b.bin</source>
  </document>
</project>
`
	assert.Equal(t, want, string(data))
}

func TestEncode_NoAttributes(t *testing.T) {
	data, err := Marshal(&Project{Documents: []Document{{Source: "/x"}}})
	require.NoError(t, err)

	body := strings.SplitN(string(data), "\n", 2)[1]
	assert.NotContains(t, body, "=", "body must not carry attributes")
}

func TestEncode_EmptyProject(t *testing.T) {
	data, err := Marshal(&Project{})
	require.NoError(t, err)
	assert.Contains(t, string(data), "<project></project>")
}

func TestDecode_PreservesMultilineContent(t *testing.T) {
	content := "line one\n  indented line\n\ttabbed\n"
	data, err := Marshal(&Project{Documents: []Document{{Source: "/f", Content: strPtr(content)}}})
	require.NoError(t, err)

	p, err := Unmarshal(data)
	require.NoError(t, err)
	require.Len(t, p.Documents, 1)
	require.True(t, p.Documents[0].HasContent())
	assert.Equal(t, content, *p.Documents[0].Content)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantSources []string
		wantErr     bool
	}{
		{
			name: "sources in document order",
			input: `<?xml version="1.0" encoding="UTF-8"?>
<project>
  <document><source>/b</source></document>
  <document><source>/a</source><document_content>x</document_content></document>
</project>`,
			wantSources: []string{"/b", "/a"},
		},
		{
			name:        "document without source is skipped",
			input:       `<project><document><document_content>x</document_content></document><document><source>/a</source></document></project>`,
			wantSources: []string{"/a"},
		},
		{
			name:        "empty source is skipped",
			input:       `<project><document><source></source></document><document><source/></document></project>`,
			wantSources: []string{},
		},
		{
			name:        "unknown children are ignored",
			input:       `<project><document><source>/a</source><note>hi</note></document><extra/></project>`,
			wantSources: []string{"/a"},
		},
		{
			name:        "empty project",
			input:       `<project/>`,
			wantSources: []string{},
		},
		{
			name:        "latin-1 declaration is transcoded",
			input:       "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><project><document><source>/caf\xe9</source></document></project>",
			wantSources: []string{"/café"},
		},
		{
			name:        "first of several sources wins",
			input:       `<project><document><source>/first</source><source>/second</source></document></project>`,
			wantSources: []string{"/first"},
		},
		{
			name:        "comments and trailing whitespace around root",
			input:       "\ufeff<!-- saved --><project><document><source>/a</source></document></project>\n<!-- end -->\n\n",
			wantSources: []string{"/a"},
		},
		{
			name:    "text before root",
			input:   `notes: <project><document><source>/a</source></document></project>`,
			wantErr: true,
		},
		{
			name:    "second root element",
			input:   `<project><document><source>/a</source></document></project><project><`,
			wantErr: true,
		},
		{
			name:    "garbage after root",
			input:   `<project><document><source>/a</source></document></project>garbage </bad>`,
			wantErr: true,
		},
		{
			name:    "wrong root element",
			input:   `<files><document><source>/a</source></document></files>`,
			wantErr: true,
		},
		{
			name:    "plain text",
			input:   "this is not xml at all",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "unterminated element",
			input:   `<project><document><source>/a</source>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode(strings.NewReader(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSources, p.Sources())
		})
	}
}

func TestDecode_NoRoot(t *testing.T) {
	_, err := Unmarshal([]byte("   \n  "))
	require.ErrorIs(t, err, ErrNoRoot)
}
