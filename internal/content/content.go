// Package content loads the documents shown in the drawer and renders them
// for the terminal.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/dustin/go-humanize"
)

// Kind is how a document is rendered.
type Kind int

const (
	Text Kind = iota
	Markdown
	JSON
	Code
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Markdown:
		return "markdown"
	case JSON:
		return "json"
	case Code:
		return "code"
	default:
		return "unknown"
	}
}

// Document is a loaded file.
type Document struct {
	Name string
	Kind Kind
	Data []byte
	// Lexer is the chroma lexer name for Code documents.
	Lexer string
}

// Load reads path and detects its kind from the file name.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return FromBytes(filepath.Base(path), data), nil
}

// FromBytes builds a document from in-memory data named name.
func FromBytes(name string, data []byte) Document {
	doc := Document{Name: name, Data: data}
	doc.Kind, doc.Lexer = detect(name)
	return doc
}

func detect(name string) (Kind, string) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return Markdown, "markdown"
	case ".json":
		return JSON, "json"
	case "", ".txt", ".text", ".log":
		return Text, ""
	}
	if l := lexers.Match(name); l != nil {
		return Code, l.Config().Name
	}
	return Text, ""
}

// Size is the document's size in bytes.
func (d Document) Size() int64 {
	return int64(len(d.Data))
}

// SizeLabel formats Size for humans, e.g. "2.0 KiB".
func (d Document) SizeLabel() string {
	return humanize.IBytes(uint64(d.Size()))
}

// Title is the name shown in the drawer header.
func (d Document) Title() string {
	if d.Name == "" {
		return "Untitled"
	}
	return d.Name
}
