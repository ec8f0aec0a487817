package schema

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader reads a schema Document from a Source. The default implementation
// is returned by dynform.NewLoader.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions is the resolved loader configuration.
type LoaderOptions struct {
	// Files backs SourceKindFS. Nil rejects fs sources.
	Files fs.FS
	// HTTPClient serves SourceKindURL. When nil, URL sources are rejected
	// unless HTTPEnabled is set, in which case a default client is used.
	HTTPClient  *http.Client
	HTTPEnabled bool
	// Timeout bounds remote fetches. It is applied to clients that do not
	// set their own.
	Timeout time.Duration
}

// LoaderOption mutates LoaderOptions.
type LoaderOption func(*LoaderOptions)

// WithFileSystem serves fs sources from files.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(o *LoaderOptions) { o.Files = files }
}

// WithHTTPClient serves URL sources through client.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(o *LoaderOptions) { o.HTTPClient = client }
}

// WithHTTPFallback enables URL sources with a default client bounded by
// timeout (zero means no bound).
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(o *LoaderOptions) {
		o.HTTPEnabled = true
		o.Timeout = timeout
	}
}

// WithTimeout bounds remote fetches without enabling HTTP on its own.
func WithTimeout(timeout time.Duration) LoaderOption {
	return func(o *LoaderOptions) { o.Timeout = timeout }
}

// NewLoaderOptions folds opts into a LoaderOptions value. Nil options are
// skipped.
func NewLoaderOptions(opts ...LoaderOption) LoaderOptions {
	var out LoaderOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&out)
		}
	}
	return out
}
