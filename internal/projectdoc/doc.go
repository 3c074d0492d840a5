// Package projectdoc defines the XML project document format.
//
// A project document lists file paths and, optionally, the text of each file:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<project>
//	  <document>
//	    <source>/abs/path/main.go</source>
//	    <document_content>package main ...</document_content>
//	  </document>
//	</project>
//
// No attributes are used. Readers only look at <source>; every other child of
// <document> is ignored when loading.
package projectdoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

// ErrNoRoot indicates the input contained no XML element at all.
var ErrNoRoot = errors.New("no root element")

var utf8BOM = []byte("\ufeff")

// Project is the root <project> element.
type Project struct {
	XMLName   xml.Name   `xml:"project"`
	Documents []Document `xml:"document"`
}

// Document is one <document> entry.
type Document struct {
	// Source is the file path. Always written; may be empty when read.
	Source string `xml:"source"`

	// Content is the full file text, nil when the text was not embedded.
	Content *string `xml:"document_content,omitempty"`
}

// UnmarshalXML keeps the first <source> when an entry has several.
func (d *Document) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		Sources []string `xml:"source"`
		Content *string  `xml:"document_content"`
	}
	if err := dec.DecodeElement(&raw, &start); err != nil {
		return err
	}

	d.Source = ""
	if len(raw.Sources) > 0 {
		d.Source = raw.Sources[0]
	}
	d.Content = raw.Content
	return nil
}

// HasContent reports whether the entry carries embedded file text.
func (d Document) HasContent() bool {
	return d.Content != nil
}

// Sources returns the non-empty source paths in document order.
func (p *Project) Sources() []string {
	sources := make([]string, 0, len(p.Documents))
	for _, d := range p.Documents {
		if d.Source == "" {
			continue
		}
		sources = append(sources, d.Source)
	}
	return sources
}

// Encode writes p to w as an indented UTF-8 XML document with a declaration.
func Encode(w io.Writer, p *Project) error {
	if _, err := io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"); err != nil {
		return fmt.Errorf("failed to write xml declaration: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush project: %w", err)
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write trailing newline: %w", err)
	}
	return nil
}

// Marshal returns the encoded form of p.
func Marshal(p *Project) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a project document from r.
// Documents declaring a non-UTF-8 encoding are transcoded. Text before the
// root element and anything but whitespace, comments or processing
// instructions after it are errors.
func Decode(r io.Reader) (*Project, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	start, err := rootElement(dec)
	if err != nil {
		return nil, err
	}

	var p Project
	if err := dec.DecodeElement(&p, start); err != nil {
		return nil, fmt.Errorf("failed to decode project: %w", err)
	}

	if err := expectEnd(dec); err != nil {
		return nil, err
	}
	return &p, nil
}

// rootElement skips the prolog and returns the first start element.
func rootElement(dec *xml.Decoder) (*xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrNoRoot
			}
			return nil, fmt.Errorf("failed to decode project: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return &t, nil
		case xml.CharData:
			if len(bytes.TrimSpace(bytes.TrimPrefix(t, utf8BOM))) > 0 {
				return nil, fmt.Errorf("failed to decode project: text before root element")
			}
		}
	}
}

// expectEnd consumes the input after the root element.
func expectEnd(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to decode project: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("failed to decode project: unexpected element <%s> after root", t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("failed to decode project: text after root element")
			}
		}
	}
}

// Unmarshal parses data as a project document.
func Unmarshal(data []byte) (*Project, error) {
	return Decode(bytes.NewReader(data))
}
