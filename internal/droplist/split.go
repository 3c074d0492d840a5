// Package droplist parses the file list produced by a drag-and-drop source.
//
// Desktop drop targets deliver dropped files as a single Tcl list string:
// items are separated by whitespace, an item containing spaces is wrapped in
// braces, and double quotes or backslashes may also be used for quoting.
//
//	{/home/me/My Notes.txt} /home/me/todo.md "/tmp/a b.log"
package droplist

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// Split breaks a drop payload into individual path strings.
func Split(data string) ([]string, error) {
	items := []string{}
	var plain strings.Builder

	flush := func() error {
		if plain.Len() == 0 {
			return nil
		}
		words, err := shlex.Split(escapePlain(plain.String()))
		if err != nil {
			return fmt.Errorf("failed to split drop list: %w", err)
		}
		items = append(items, words...)
		plain.Reset()
		return nil
	}

	inQuote := false
	for i := 0; i < len(data); {
		c := data[i]

		switch {
		case c == '\\' && i+1 < len(data):
			plain.WriteByte(c)
			plain.WriteByte(data[i+1])
			i += 2
			continue

		case c == '"':
			inQuote = !inQuote

		case c == '{' && !inQuote && (i == 0 || isSpace(data[i-1])):
			if err := flush(); err != nil {
				return nil, err
			}
			end, err := matchBrace(data, i)
			if err != nil {
				return nil, err
			}
			items = append(items, data[i+1:end])
			i = end + 1
			if i < len(data) && !isSpace(data[i]) {
				return nil, fmt.Errorf("list element in braces followed by %q instead of space", data[i])
			}
			continue
		}

		plain.WriteByte(c)
		i++
	}

	if inQuote {
		return nil, fmt.Errorf("unmatched quote in drop list")
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return items, nil
}

// matchBrace returns the index of the brace closing the one at open.
func matchBrace(data string, open int) (int, error) {
	depth := 0
	for i := open; i < len(data); i++ {
		switch data[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("unmatched open brace in drop list")
}

// escapePlain neutralises characters shlex treats specially but Tcl lists do not:
// single quotes and comment markers are ordinary path characters here.
func escapePlain(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			b.WriteByte(c)
			b.WriteByte(s[i+1])
			i++
			continue
		}
		if c == '\'' || c == '#' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
