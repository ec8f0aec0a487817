package dynform

import (
	"context"
	"errors"

	"github.com/goliatone/go-dynform/internal/schema/loader"
	"github.com/goliatone/go-dynform/pkg/schema"
)

// NewLoader returns a schema.Loader over files, an optional fs.FS and,
// when enabled, HTTP.
func NewLoader(options ...schema.LoaderOption) schema.Loader {
	return loader.New(schema.NewLoaderOptions(options...))
}

// LoadSchema fetches and parses a schema from src.
func LoadSchema(ctx context.Context, src schema.Source, opts ...schema.LoaderOption) (schema.FormSchema, error) {
	if ctx == nil {
		return schema.FormSchema{}, errors.New("dynform: context is required")
	}
	doc, err := NewLoader(opts...).Load(ctx, src)
	if err != nil {
		return schema.FormSchema{}, err
	}
	return schema.Parse(doc)
}
