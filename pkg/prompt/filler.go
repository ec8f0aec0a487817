package prompt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-dynform/pkg/form"
	"github.com/goliatone/go-dynform/pkg/schema"
)

// Filler walks a form.State section by section, prompting for every control
// and re-asking while the engine reports the control as showing an error.
type Filler struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
	maxAttempts  int
	logger       *slog.Logger
}

// New constructs a Filler with defaults (survey driver, JSON output, three
// attempts per field).
func New(opts ...Option) *Filler {
	f := &Filler{
		outputFormat: OutputFormatJSON,
		maxAttempts:  3,
		theme:        Theme{SectionPrefix: "== ", ErrorPrefix: "! "},
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	if f.driver == nil {
		f.driver = NewSurveyDriver(nil)
	}
	return f
}

// ContentType reports the serialization format used by Encode.
func (f *Filler) ContentType() string {
	switch f.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Fill prompts for every control and submits the state. A submit failure is
// returned as the engine's *form.ValidationFailure.
func (f *Filler) Fill(ctx context.Context, state *form.State) (form.Snapshot, error) {
	if ctx == nil {
		return form.Snapshot{}, errors.New("prompt: context is required")
	}
	if state == nil {
		return form.Snapshot{}, errors.New("prompt: form state is nil")
	}

	s := state.Schema()
	if s.ScreenName != "" {
		if err := f.driver.Notify(ctx, s.ScreenName); err != nil {
			return form.Snapshot{}, err
		}
	}

	for _, section := range s.Sections {
		if section.Name != "" {
			if err := f.driver.Notify(ctx, f.theme.SectionPrefix+section.Name); err != nil {
				return form.Snapshot{}, err
			}
		}
		for _, field := range section.Fields {
			if err := f.fillControl(ctx, state, field.ControlName); err != nil {
				return form.Snapshot{}, err
			}
		}
	}

	snapshot, err := state.Submit()
	if err != nil {
		return form.Snapshot{}, err
	}
	f.logger.Debug("form filled", slog.String("screen", s.ScreenName), slog.Int("values", snapshot.Len()))
	return snapshot, nil
}

func (f *Filler) fillControl(ctx context.Context, state *form.State, name string) error {
	for attempt := 1; ; attempt++ {
		c, ok := state.Control(name)
		if !ok {
			return &form.UnknownControlError{Name: name}
		}

		value, err := f.ask(ctx, c)
		if err != nil {
			return err
		}
		if err := state.SetValue(name, value); err != nil {
			return err
		}
		if err := state.Touch(name); err != nil {
			return err
		}
		if !state.IsFieldShowingError(name) {
			return nil
		}

		if err := f.driver.Notify(ctx, f.theme.ErrorPrefix+state.ErrorMessage(name)); err != nil {
			return err
		}
		if f.maxAttempts > 0 && attempt >= f.maxAttempts {
			return fmt.Errorf("%w: %s", ErrTooManyAttempts, name)
		}
	}
}

func (f *Filler) ask(ctx context.Context, c form.Control) (any, error) {
	q := Question{
		Message: promptLabel(c.Field),
		Help:    c.Field.Placeholder,
		Default: stringValue(c.Value),
	}

	switch c.Field.Type {
	case schema.FieldTypeCheckbox:
		q.On, _ = c.Value.(bool)
		return f.driver.Confirm(ctx, q)
	case schema.FieldTypeSelect:
		if len(c.Options) == 0 {
			return f.driver.Text(ctx, q)
		}
		q.Choices = c.Options
		for {
			answer, err := f.driver.Choose(ctx, q)
			if err != nil {
				return nil, err
			}
			if contains(c.Options, answer) {
				return answer, nil
			}
			if err := f.driver.Notify(ctx, f.theme.ErrorPrefix+"Invalid selection"); err != nil {
				return nil, err
			}
		}
	case schema.FieldTypeNumber:
		for {
			raw, err := f.driver.Text(ctx, q)
			if err != nil {
				return nil, err
			}
			if value, ok := parseNumber(raw); ok {
				return value, nil
			}
			if err := f.driver.Notify(ctx, f.theme.ErrorPrefix+q.Message+" must be a number"); err != nil {
				return nil, err
			}
		}
	case schema.FieldTypeText, schema.FieldTypeEmail, schema.FieldTypeDate:
		return f.driver.Text(ctx, q)
	default:
		return nil, fmt.Errorf("prompt: unsupported field type %q", c.Field.Type)
	}
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// Encode serializes snapshot in the configured output format.
func (f *Filler) Encode(snapshot form.Snapshot) ([]byte, error) {
	switch f.outputFormat {
	case OutputFormatFormURLEncoded:
		values := url.Values{}
		for _, name := range snapshot.Names() {
			v, _ := snapshot.Get(name)
			values.Set(name, fmt.Sprint(v))
		}
		return []byte(values.Encode()), nil
	case OutputFormatPrettyText:
		var b strings.Builder
		for _, name := range snapshot.Names() {
			v, _ := snapshot.Get(name)
			fmt.Fprintf(&b, "%s=%v\n", name, v)
		}
		return []byte(b.String()), nil
	default:
		return json.MarshalIndent(snapshot, "", "  ")
	}
}

func promptLabel(field schema.FieldSchema) string {
	label := strings.TrimSpace(field.Label)
	if label == "" {
		label = field.ControlName
	}
	if field.Required {
		label += " *"
	}
	return label
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// parseNumber keeps integers integral. Blank input is passed through so the
// engine decides whether the field may be left empty.
func parseNumber(raw string) (any, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", true
	}
	if i, err := strconv.Atoi(trimmed); err == nil {
		return i, true
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f, true
	}
	return nil, false
}
