package form

import (
	"github.com/goliatone/go-dynform/pkg/schema"
	"github.com/goliatone/go-dynform/pkg/validation"
)

// control is the live state of one field. Only State mutates it.
type control struct {
	field   schema.FieldSchema
	rules   validation.RuleSet
	value   any
	touched bool
	dirty   bool
	errors  validation.Errors
	options []string
}

func (c *control) assign(value any) {
	c.value = deepCopy(value)
	c.dirty = true
	c.errors = c.rules.Evaluate(value)
}

func (c *control) snapshot() Control {
	return Control{
		Name:    c.field.ControlName,
		Field:   c.field,
		Value:   deepCopy(c.value),
		Touched: c.touched,
		Dirty:   c.dirty,
		Errors:  c.errors,
		Options: cloneOptions(c.options),
		Rules:   c.rules.Definitions(),
	}
}

// Control is a read-only copy of a control's state at the time it was
// requested. Mutating it has no effect on the form.
type Control struct {
	Name    string                  `json:"name"`
	Field   schema.FieldSchema      `json:"field"`
	Value   any                     `json:"value"`
	Touched bool                    `json:"touched"`
	Dirty   bool                    `json:"dirty"`
	Errors  validation.Errors       `json:"errors"`
	Options []string                `json:"options,omitempty"`
	Rules   []validation.Definition `json:"rules,omitempty"`
}

// Valid reports whether the control has no violated rules.
func (c Control) Valid() bool {
	return c.Errors.Empty()
}

// ShowingError reports whether a renderer should surface the control's error:
// the control is invalid and has been touched or edited.
func (c Control) ShowingError() bool {
	return (c.Touched || c.Dirty) && !c.Errors.Empty()
}

func cloneOptions(values []string) []string {
	if values == nil {
		return nil
	}
	return append([]string{}, values...)
}
