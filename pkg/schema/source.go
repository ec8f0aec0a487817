package schema

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

type source struct {
	kind     SourceKind
	location string
}

func (s source) Kind() SourceKind { return s.kind }

func (s source) Location() string { return s.location }

func (s source) String() string { return string(s.kind) + ":" + s.location }

// SourceFromFile points at a schema on local disk.
func SourceFromFile(p string) Source {
	return source{kind: SourceKindFile, location: filepath.Clean(p)}
}

// SourceFromFS names an entry inside the loader's fs.FS. Names are slash
// separated and never rooted.
func SourceFromFS(name string) Source {
	return source{kind: SourceKindFS, location: strings.TrimPrefix(path.Clean(name), "/")}
}

// SourceFromURL wraps a remote schema location. It panics on a malformed URL;
// use ParseSource for untrusted input.
func SourceFromURL(raw string) Source {
	src, err := urlSource(raw)
	if err != nil {
		panic(err)
	}
	return src
}

// ParseSource classifies a user supplied location: http(s) URLs become URL
// sources, "fs:" prefixed names address the loader's fs.FS and anything else
// is a file path.
func ParseSource(raw string) (Source, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return nil, errors.New("schema: empty source")
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return urlSource(raw)
	case strings.HasPrefix(raw, "fs:"):
		return SourceFromFS(strings.TrimPrefix(raw, "fs:")), nil
	default:
		return SourceFromFile(raw), nil
	}
}

func urlSource(raw string) (Source, error) {
	if raw == "" {
		return nil, errors.New("schema: empty URL source")
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return nil, fmt.Errorf("schema: invalid URL %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("schema: URL %q has no host", raw)
	}
	return source{kind: SourceKindURL, location: raw}, nil
}
