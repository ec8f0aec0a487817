package form

import (
	"context"
	"log/slog"

	"github.com/goliatone/go-dynform/pkg/schema"
	"github.com/goliatone/go-dynform/pkg/validation"
)

// State is the live, mutable model behind a rendered form. The set of
// controls is fixed at build time and follows schema order.
//
// State is not safe for concurrent mutation; callers serialise access.
type State struct {
	schema   schema.FormSchema
	order    []string
	controls map[string]*control
	messages messages
	logger   *slog.Logger
}

// Schema returns the schema the state was built from.
func (s *State) Schema() schema.FormSchema {
	return s.schema
}

// Names lists control names in schema order.
func (s *State) Names() []string {
	return append([]string(nil), s.order...)
}

func (s *State) lookup(name string) (*control, error) {
	c, ok := s.controls[name]
	if !ok {
		return nil, &UnknownControlError{Name: name}
	}
	return c, nil
}

// SetValue replaces the control's value, marks it dirty and re-runs its
// rules. Touched is left untouched and no other control is re-validated.
func (s *State) SetValue(name string, value any) error {
	c, err := s.lookup(name)
	if err != nil {
		return err
	}
	c.assign(value)
	return nil
}

// Touch marks the control as interacted with. Touching twice is a no-op.
func (s *State) Touch(name string) error {
	c, err := s.lookup(name)
	if err != nil {
		return err
	}
	c.touched = true
	return nil
}

// TouchAll marks every control touched so all pending errors become visible.
func (s *State) TouchAll() {
	for _, name := range s.order {
		s.controls[name].touched = true
	}
}

// IsValid reports whether every control currently passes its rules.
func (s *State) IsValid() bool {
	for _, name := range s.order {
		if !s.controls[name].errors.Empty() {
			return false
		}
	}
	return true
}

// ErrorsFor returns the kinds the control currently violates.
func (s *State) ErrorsFor(name string) (validation.Errors, error) {
	c, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	return c.errors, nil
}

// ErrorMessage returns the display text for the control's highest priority
// error, or "" when the control is valid or unknown.
func (s *State) ErrorMessage(name string) string {
	c, ok := s.controls[name]
	if !ok {
		return ""
	}
	kind, ok := c.errors.First()
	if !ok {
		return ""
	}
	return s.messages.message(c.field, kind)
}

// IsFieldShowingError reports whether the control is invalid and has been
// touched or edited (dirty). Pristine controls hide their errors and
// unknown names report false.
func (s *State) IsFieldShowingError(name string) bool {
	c, ok := s.controls[name]
	if !ok {
		return false
	}
	return (c.touched || c.dirty) && !c.errors.Empty()
}

// Value returns the control's current value.
func (s *State) Value(name string) (any, bool) {
	c, ok := s.controls[name]
	if !ok {
		return nil, false
	}
	return deepCopy(c.value), true
}

// Options returns the options resolved for the control at build time. Fields
// without options or an option source return nil.
func (s *State) Options(name string) []string {
	c, ok := s.controls[name]
	if !ok {
		return nil
	}
	return cloneOptions(c.options)
}

// Control returns a read-only copy of the named control.
func (s *State) Control(name string) (Control, bool) {
	c, ok := s.controls[name]
	if !ok {
		return Control{}, false
	}
	return c.snapshot(), true
}

// Controls returns read-only copies of every control in schema order.
func (s *State) Controls() []Control {
	out := make([]Control, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.controls[name].snapshot())
	}
	return out
}

// Submit returns a snapshot of all values when the form is valid and leaves
// the state untouched. An invalid form touches every control so its errors
// show, yields a *ValidationFailure and keeps its values for correction.
func (s *State) Submit() (Snapshot, error) {
	var failure ValidationFailure
	for _, name := range s.order {
		c := s.controls[name]
		if c.errors.Empty() {
			continue
		}
		kind, _ := c.errors.First()
		failure.Fields = append(failure.Fields, FieldError{
			Control: name,
			Kinds:   c.errors.Kinds(),
			Message: s.messages.message(c.field, kind),
		})
	}

	if len(failure.Fields) > 0 {
		s.TouchAll()
		s.logger.LogAttrs(context.Background(), slog.LevelDebug, "form submit rejected",
			slog.String("screen", s.schema.ScreenName),
			slog.Int("invalid", len(failure.Fields)),
		)
		return Snapshot{}, &failure
	}

	values := make(map[string]any, len(s.order))
	for _, name := range s.order {
		values[name] = deepCopy(s.controls[name].value)
	}
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "form submitted",
		slog.String("screen", s.schema.ScreenName),
		slog.Int("values", len(values)),
	)
	return newSnapshot(s.order, values), nil
}
