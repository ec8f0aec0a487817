package options

import "strings"

// Resolver maps an option source identifier to the ordered values a select
// field offers. Unknown identifiers yield an empty slice rather than an error
// so a missing backend degrades to "no options". Resolve must not block; any
// I/O belongs in Prefetch.
type Resolver interface {
	Resolve(sourceID string) []string
}

// Func adapts a function into a Resolver.
type Func func(sourceID string) []string

// Resolve calls the underlying function.
func (fn Func) Resolve(sourceID string) []string {
	if fn == nil {
		return []string{}
	}
	return nonNil(fn(sourceID))
}

// Static is an in-memory Resolver keyed by source id.
type Static map[string][]string

// Resolve returns a copy of the registered values.
func (s Static) Resolve(sourceID string) []string {
	values, ok := s[strings.TrimSpace(sourceID)]
	if !ok {
		return []string{}
	}
	return append([]string{}, values...)
}

// Merge returns a new Static holding s overlaid with other. Later values win.
func (s Static) Merge(other Static) Static {
	out := make(Static, len(s)+len(other))
	for id, values := range s {
		out[id] = append([]string(nil), values...)
	}
	for id, values := range other {
		out[id] = append([]string(nil), values...)
	}
	return out
}

// Empty resolves every identifier to no options.
var Empty Resolver = Static(nil)

// Chain consults resolvers in order and returns the first non-empty result.
func Chain(resolvers ...Resolver) Resolver {
	return Func(func(sourceID string) []string {
		for _, r := range resolvers {
			if r == nil {
				continue
			}
			if values := r.Resolve(sourceID); len(values) > 0 {
				return values
			}
		}
		return []string{}
	})
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
