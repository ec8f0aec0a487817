// Package dynform wires schema loading, option prefetching and form
// construction into a couple of entry points for applications that do not
// need to assemble the pieces themselves.
package dynform

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/goliatone/go-dynform/pkg/form"
	"github.com/goliatone/go-dynform/pkg/options"
	"github.com/goliatone/go-dynform/pkg/schema"
)

// Option configures NewForm.
type Option func(*config)

type config struct {
	resolver       options.Resolver
	fetcher        options.Fetcher
	tolerateErrors bool
	logger         *slog.Logger
	formOptions    []form.Option
}

// WithResolver supplies options for sources the fetcher does not cover.
func WithResolver(resolver options.Resolver) Option {
	return func(cfg *config) {
		cfg.resolver = resolver
	}
}

// WithFetcher prefetches every option source of the schema before building.
func WithFetcher(fetcher options.Fetcher) Option {
	return func(cfg *config) {
		cfg.fetcher = fetcher
	}
}

// WithTolerateFetchErrors degrades failing option sources to no options.
func WithTolerateFetchErrors() Option {
	return func(cfg *config) {
		cfg.tolerateErrors = true
	}
}

// WithLogger routes prefetch and build diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithFormOptions forwards options to the form builder.
func WithFormOptions(opts ...form.Option) Option {
	return func(cfg *config) {
		cfg.formOptions = append(cfg.formOptions, opts...)
	}
}

// NewForm builds a form state for s. When a fetcher is configured, the
// schema's option sources are fetched first and take precedence over the
// configured resolver.
func NewForm(ctx context.Context, s schema.FormSchema, opts ...Option) (*form.State, error) {
	cfg := config{
		resolver: options.Empty,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	resolver := cfg.resolver
	if resolver == nil {
		resolver = options.Empty
	}
	if cfg.fetcher != nil {
		prefetchOpts := []options.PrefetchOption{options.WithLogger(cfg.logger)}
		if cfg.tolerateErrors {
			prefetchOpts = append(prefetchOpts, options.WithTolerateErrors())
		}
		fetched, err := options.Prefetch(ctx, cfg.fetcher, s.SourceIDs(), prefetchOpts...)
		if err != nil {
			return nil, fmt.Errorf("dynform: prefetch options: %w", err)
		}
		resolver = options.Chain(fetched, resolver)
	}

	builderOpts := append([]form.Option{form.WithLogger(cfg.logger)}, cfg.formOptions...)
	return form.NewBuilder(builderOpts...).Build(s, resolver)
}
