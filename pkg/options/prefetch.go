package options

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrSourceNotFound is returned by fetchers that can tell a source id is
// unknown. Prefetch records such sources as having no options.
var ErrSourceNotFound = errors.New("options: source not found")

// Fetcher retrieves option values for a source id, typically over the
// network. Fetchers are only used ahead of form construction.
type Fetcher interface {
	Fetch(ctx context.Context, sourceID string) ([]string, error)
}

// FetcherFunc adapts a function into a Fetcher.
type FetcherFunc func(ctx context.Context, sourceID string) ([]string, error)

// Fetch calls the underlying function.
func (fn FetcherFunc) Fetch(ctx context.Context, sourceID string) ([]string, error) {
	return fn(ctx, sourceID)
}

// PrefetchOption configures Prefetch.
type PrefetchOption func(*prefetchConfig)

type prefetchConfig struct {
	logger         *slog.Logger
	tolerateErrors bool
}

// WithLogger routes prefetch diagnostics to logger.
func WithLogger(logger *slog.Logger) PrefetchOption {
	return func(cfg *prefetchConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithTolerateErrors degrades failing sources to empty options instead of
// aborting the whole prefetch.
func WithTolerateErrors() PrefetchOption {
	return func(cfg *prefetchConfig) {
		cfg.tolerateErrors = true
	}
}

// Prefetch resolves every id through fetcher and returns the results as a
// Static resolver, so form construction itself never waits on I/O.
func Prefetch(ctx context.Context, fetcher Fetcher, ids []string, opts ...PrefetchOption) (Static, error) {
	if fetcher == nil {
		return nil, errors.New("options: fetcher is nil")
	}
	cfg := prefetchConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make(Static, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		values, err := fetcher.Fetch(ctx, id)
		switch {
		case errors.Is(err, ErrSourceNotFound):
			cfg.logger.Debug("option source not found", "source", id)
			values = []string{}
		case err != nil && cfg.tolerateErrors:
			cfg.logger.Warn("option source failed", "source", id, "error", err)
			values = []string{}
		case err != nil:
			return nil, fmt.Errorf("options: fetch %q: %w", id, err)
		}
		cfg.logger.Debug("option source fetched", "source", id, "count", len(values))
		out[id] = nonNil(values)
	}
	return out, nil
}
