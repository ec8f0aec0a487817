package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/goliatone/go-dynform"
	"github.com/goliatone/go-dynform/pkg/employees"
	"github.com/goliatone/go-dynform/pkg/options"
	"github.com/goliatone/go-dynform/pkg/schema"
)

const remoteSchemaTimeout = 10 * time.Second

// loadSchemaArg loads the schema named by the first argument, or the bundled
// employee form when no argument is given.
func loadSchemaArg(ctx context.Context, args []string) (schema.FormSchema, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return dynform.EmployeeSchema()
	}
	src, err := schema.ParseSource(args[0])
	if err != nil {
		return schema.FormSchema{}, err
	}
	return dynform.LoadSchema(ctx, src,
		schema.WithHTTPFallback(remoteSchemaTimeout),
		schema.WithFileSystem(dynform.FormsFS()),
	)
}

// formOptions assembles option resolution from config: static options, an
// OpenAPI lookup document and the employee directory as fallbacks, plus an
// HTTP or Redis prefetch when configured. The returned cleanup releases any
// client that was opened.
func (a *app) formOptions(ctx context.Context) ([]dynform.Option, func(), error) {
	cleanup := func() {}
	resolvers := []options.Resolver{options.Static(a.config.GetStringMapStringSlice(cfgKeyOptions))}

	if path := a.config.GetString(cfgKeyOptionsOpenAPI); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, cleanup, fmt.Errorf("read openapi options: %w", err)
		}
		resolver, err := options.NewOpenAPIResolver(ctx, raw)
		if err != nil {
			return nil, cleanup, err
		}
		resolvers = append(resolvers, resolver)
	}
	resolvers = append(resolvers, employees.DefaultDirectory().Resolver())

	opts := []dynform.Option{
		dynform.WithLogger(a.logger),
		dynform.WithResolver(options.Chain(resolvers...)),
	}

	switch {
	case a.config.GetString(cfgKeyOptionsURL) != "":
		opts = append(opts,
			dynform.WithFetcher(options.NewHTTPFetcher(a.config.GetString(cfgKeyOptionsURL))),
			dynform.WithTolerateFetchErrors(),
		)
	case a.config.GetString(cfgKeyRedisAddr) != "":
		client := redis.NewClient(&redis.Options{Addr: a.config.GetString(cfgKeyRedisAddr)})
		cleanup = func() { _ = client.Close() }

		var redisOpts []options.RedisOption
		if prefix := a.config.GetString(cfgKeyRedisPrefix); prefix != "" {
			redisOpts = append(redisOpts, options.WithPrefix(prefix))
		}
		opts = append(opts,
			dynform.WithFetcher(options.NewRedisFetcher(client, redisOpts...)),
			dynform.WithTolerateFetchErrors(),
		)
	}
	return opts, cleanup, nil
}
