// Package loader reads schema documents from disk, an fs.FS or HTTP.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/goliatone/go-dynform/pkg/schema"
)

// ErrHTTPDisabled is returned for URL sources when no client was configured.
var ErrHTTPDisabled = errors.New("schema loader: http sources are disabled")

// Loader implements schema.Loader.
type Loader struct {
	files fs.FS
	http  *http.Client
}

var _ schema.Loader = (*Loader)(nil)

// New constructs a Loader. An explicit HTTPClient wins over the fallback; a
// configured Timeout applies to either when the client has none.
func New(options schema.LoaderOptions) *Loader {
	l := &Loader{files: options.Files}

	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if clone.Timeout == 0 {
			clone.Timeout = options.Timeout
		}
		l.http = &clone
	case options.HTTPEnabled:
		l.http = &http.Client{Timeout: options.Timeout}
	}
	return l
}

// Load reads src and wraps the payload in a Document.
func (l *Loader) Load(ctx context.Context, src schema.Source) (schema.Document, error) {
	if src == nil {
		return schema.Document{}, errors.New("schema loader: source is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case schema.SourceKindFile:
		data, err = readFile(ctx, src.Location())
	case schema.SourceKindFS:
		data, err = readFS(ctx, l.files, src.Location())
	case schema.SourceKindURL:
		if l.http == nil {
			return schema.Document{}, ErrHTTPDisabled
		}
		data, err = readURL(ctx, l.http, src.Location())
	default:
		err = fmt.Errorf("unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return schema.Document{}, fmt.Errorf("schema loader: %s %q: %w", src.Kind(), src.Location(), err)
	}

	return schema.NewDocument(src, data)
}
