package schema

import (
	"bytes"
	"errors"
	"path"
	"strings"
)

// Source tells a Loader where a schema lives.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates where a Source can point.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Format is the serialisation of a schema document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrEmptyDocument is returned for a zero length payload.
var ErrEmptyDocument = errors.New("schema: document is empty")

// Document is a raw schema payload tagged with its origin and format.
type Document struct {
	source Source
	format Format
	raw    []byte
}

// NewDocument copies raw and detects its format. The location extension
// decides when present; otherwise a payload opening with '{' is JSON and
// anything else is YAML.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("schema: document source is required")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Document{}, ErrEmptyDocument
	}
	return Document{
		source: src,
		format: detectFormat(src.Location(), raw),
		raw:    bytes.Clone(raw),
	}, nil
}

// MustNewDocument is NewDocument for fixtures; it panics on error.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

func (d Document) Source() Source { return d.source }

func (d Document) Format() Format { return d.format }

// Raw returns a copy of the payload.
func (d Document) Raw() []byte { return bytes.Clone(d.raw) }

// Location is the source location, or "" for a zero Document.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

func detectFormat(location string, raw []byte) Format {
	if cut := strings.IndexAny(location, "?#"); cut >= 0 {
		location = location[:cut]
	}
	switch strings.ToLower(path.Ext(location)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return FormatJSON
	}
	return FormatYAML
}
