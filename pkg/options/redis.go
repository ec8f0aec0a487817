package options

import (
	"context"
	"fmt"

	backend "github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "dynform:options:"

// RedisFetcher reads option lists stored as Redis lists under prefix+sourceID.
// A missing key is reported as ErrSourceNotFound.
type RedisFetcher struct {
	client *backend.Client
	prefix string
}

// RedisOption configures a RedisFetcher.
type RedisOption func(*RedisFetcher)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) RedisOption {
	return func(f *RedisFetcher) {
		f.prefix = prefix
	}
}

// NewRedisFetcher wraps an existing client.
func NewRedisFetcher(client *backend.Client, opts ...RedisOption) *RedisFetcher {
	f := &RedisFetcher{
		client: client,
		prefix: defaultRedisPrefix,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *RedisFetcher) key(sourceID string) string {
	return f.prefix + sourceID
}

// Fetch implements Fetcher.
func (f *RedisFetcher) Fetch(ctx context.Context, sourceID string) ([]string, error) {
	key := f.key(sourceID)
	exists, err := f.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("options: redis exists %q: %w", key, err)
	}
	if exists == 0 {
		return nil, ErrSourceNotFound
	}
	values, err := f.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("options: redis lrange %q: %w", key, err)
	}
	return values, nil
}

// Store replaces the option list for sourceID.
func (f *RedisFetcher) Store(ctx context.Context, sourceID string, values []string) error {
	key := f.key(sourceID)
	pipe := f.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(values) > 0 {
		args := make([]any, len(values))
		for i, v := range values {
			args[i] = v
		}
		pipe.RPush(ctx, key, args...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("options: redis store %q: %w", key, err)
	}
	return nil
}
