package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse decodes a Document into a FormSchema, sanitises its display text and
// runs structural validation. Control name uniqueness is enforced later by
// the form builder, which owns the key invariant.
func Parse(doc Document) (FormSchema, error) {
	raw := doc.Raw()
	if len(raw) == 0 {
		return FormSchema{}, fmt.Errorf("%w: %q", ErrEmptyDocument, doc.Location())
	}

	var out FormSchema
	switch doc.Format() {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&out); err != nil {
			return FormSchema{}, fmt.Errorf("schema: decode json %q: %w", doc.Location(), err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&out); err != nil {
			return FormSchema{}, fmt.Errorf("schema: decode yaml %q: %w", doc.Location(), err)
		}
	}

	out = Sanitize(out)
	if err := Validate(out); err != nil {
		return FormSchema{}, err
	}
	return out, nil
}

// ParseBytes is a convenience wrapper for in-memory payloads. The name is only
// used for format detection and error messages.
func ParseBytes(name string, raw []byte) (FormSchema, error) {
	doc, err := NewDocument(SourceFromFS(name), raw)
	if err != nil {
		return FormSchema{}, err
	}
	return Parse(doc)
}

// Validate performs structural checks that do not depend on runtime state.
func Validate(s FormSchema) error {
	fields := s.Fields()
	if len(fields) == 0 {
		return ErrEmptySchema
	}
	for idx, field := range fields {
		if field.ControlName == "" {
			return fmt.Errorf("%w (field #%d %q)", ErrMissingControlName, idx, field.Label)
		}
		if !field.Type.Valid() {
			return fmt.Errorf("%w: %q on %s", ErrUnknownFieldType, field.Type, field.ControlName)
		}
		if field.MinLength < 0 {
			return fmt.Errorf("schema: %s min_length must not be negative", field.ControlName)
		}
	}
	return nil
}
