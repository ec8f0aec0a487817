package form

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/goliatone/go-dynform/pkg/options"
	"github.com/goliatone/go-dynform/pkg/schema"
	"github.com/goliatone/go-dynform/pkg/validation"
)

// Option customises a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for build and submit diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithTranslator localises error messages. Missing keys fall back to the
// built-in English text.
func WithTranslator(translator Translator) Option {
	return func(b *Builder) {
		b.translator = translator
	}
}

// WithLocale selects the locale passed to the Translator.
func WithLocale(locale string) Option {
	return func(b *Builder) {
		b.locale = strings.TrimSpace(locale)
	}
}

// Builder turns schemas into live form states. A Builder is immutable after
// construction and may be shared.
type Builder struct {
	logger     *slog.Logger
	translator Translator
	locale     string
}

// NewBuilder constructs a Builder with the supplied options applied.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		locale: "en",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Build is shorthand for NewBuilder(opts...).Build(s, resolver).
func Build(s schema.FormSchema, resolver options.Resolver, opts ...Option) (*State, error) {
	return NewBuilder(opts...).Build(s, resolver)
}

// Build creates a State for s. Every field becomes a control holding its
// default (or type zero) value, its derived rules and, for option-bearing
// fields, its resolved options. Explicit options win over an option source,
// in which case the resolver is not consulted. A nil resolver resolves every
// source to no options.
func (b *Builder) Build(s schema.FormSchema, resolver options.Resolver) (*State, error) {
	if resolver == nil {
		resolver = options.Empty
	}

	fields := s.Fields()
	state := &State{
		schema:   s,
		order:    make([]string, 0, len(fields)),
		controls: make(map[string]*control, len(fields)),
		messages: messages{translator: b.translator, locale: b.locale},
		logger:   b.logger,
	}

	for _, field := range fields {
		name := field.ControlName
		if strings.TrimSpace(name) == "" {
			return nil, &ConfigurationError{Control: name, Reason: "missing control name on field " + strconv.Quote(field.Label)}
		}
		if !field.Type.Valid() {
			return nil, &ConfigurationError{Control: name, Reason: "unknown field type " + strconv.Quote(field.Type.String())}
		}
		if _, exists := state.controls[name]; exists {
			return nil, &ConfigurationError{Control: name, Reason: "duplicate control name"}
		}

		c := &control{
			field:   field,
			rules:   validation.For(field),
			value:   initialValue(field),
			options: resolveOptions(field, resolver),
		}
		c.errors = c.rules.Evaluate(c.value)

		state.controls[name] = c
		state.order = append(state.order, name)
	}

	b.logger.LogAttrs(context.Background(), slog.LevelDebug, "form built",
		slog.String("screen", s.ScreenName),
		slog.Int("controls", len(state.order)),
		slog.Bool("valid", state.IsValid()),
	)
	return state, nil
}

func initialValue(field schema.FieldSchema) any {
	if field.HasDefault() {
		return deepCopy(field.Default)
	}
	return field.Type.ZeroValue()
}

func resolveOptions(field schema.FieldSchema, resolver options.Resolver) []string {
	if field.Options != nil {
		return cloneOptions(field.Options)
	}
	if source := strings.TrimSpace(field.OptionSource); source != "" {
		values := resolver.Resolve(source)
		if values == nil {
			return []string{}
		}
		return cloneOptions(values)
	}
	return nil
}
