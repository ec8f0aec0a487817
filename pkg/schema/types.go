package schema

import "strings"

// FieldSchema declares a single form input. Keys mirror the JSON corpus used
// by existing form configurations (control_name, api, ...).
type FieldSchema struct {
	Label       string    `json:"label" yaml:"label"`
	Placeholder string    `json:"placeholder" yaml:"placeholder"`
	Type        FieldType `json:"type" yaml:"type"`
	ControlName string    `json:"control_name" yaml:"control_name"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Options     []string  `json:"options,omitempty" yaml:"options,omitempty"`
	// OptionSource identifies the collaborator supplying options (the "api"
	// key in the wire format, e.g. "api/v1/departments").
	OptionSource string `json:"api,omitempty" yaml:"api,omitempty"`
	Default      any    `json:"default,omitempty" yaml:"default,omitempty"`
	// Min is the numeric lower bound for number fields. Nil means 0.
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	// MinLength is the trimmed length lower bound for text-like fields. Zero
	// disables the rule.
	MinLength int `json:"min_length,omitempty" yaml:"min_length,omitempty"`
}

// HasDefault reports whether the schema author supplied a default value.
func (f FieldSchema) HasDefault() bool {
	return f.Default != nil
}

// Minimum returns the configured numeric minimum, defaulting to zero.
func (f FieldSchema) Minimum() float64 {
	if f.Min == nil {
		return 0
	}
	return *f.Min
}

// FormSection groups fields under a heading.
type FormSection struct {
	Name   string        `json:"section_name" yaml:"section_name"`
	Fields []FieldSchema `json:"fields" yaml:"fields"`
}

// SubmitAction carries submission metadata. The engine never acts on it; the
// caller delivers snapshots to Target and navigates to Redirect.
type SubmitAction struct {
	Label    string `json:"label" yaml:"label"`
	Color    string `json:"color,omitempty" yaml:"color,omitempty"`
	Target   string `json:"api,omitempty" yaml:"api,omitempty"`
	Redirect string `json:"redirect_url,omitempty" yaml:"redirect_url,omitempty"`
}

// FormSchema is the top-level declarative form definition.
type FormSchema struct {
	ScreenName string        `json:"screen_name" yaml:"screen_name"`
	Submit     SubmitAction  `json:"submit_button" yaml:"submit_button"`
	Sections   []FormSection `json:"sections" yaml:"sections"`
}

// Fields flattens all sections, preserving declaration order.
func (s FormSchema) Fields() []FieldSchema {
	var out []FieldSchema
	for _, section := range s.Sections {
		out = append(out, section.Fields...)
	}
	return out
}

// Field looks up a field by control name.
func (s FormSchema) Field(controlName string) (FieldSchema, bool) {
	for _, section := range s.Sections {
		for _, field := range section.Fields {
			if field.ControlName == controlName {
				return field, true
			}
		}
	}
	return FieldSchema{}, false
}

// SourceIDs returns the distinct option sources the schema will consult, in
// first-seen order. Fields with explicit options are skipped since their
// source is never resolved.
func (s FormSchema) SourceIDs() []string {
	var ids []string
	seen := make(map[string]struct{})
	for _, field := range s.Fields() {
		id := strings.TrimSpace(field.OptionSource)
		if id == "" || field.Options != nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
