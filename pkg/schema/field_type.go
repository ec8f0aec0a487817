package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldType is the closed set of input kinds the engine understands.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeSelect   FieldType = "select"
	FieldTypeCheckbox FieldType = "checkbox"
)

// FieldTypes lists every supported type in canonical order.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText,
		FieldTypeEmail,
		FieldTypeNumber,
		FieldTypeDate,
		FieldTypeSelect,
		FieldTypeCheckbox,
	}
}

// ParseFieldType normalises a raw tag. Unknown tags return
// ErrUnknownFieldType so typos surface when the schema is loaded.
func ParseFieldType(raw string) (FieldType, error) {
	candidate := FieldType(strings.ToLower(strings.TrimSpace(raw)))
	if candidate.Valid() {
		return candidate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFieldType, raw)
}

// Valid reports whether t is a member of the enumeration.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeEmail, FieldTypeNumber, FieldTypeDate, FieldTypeSelect, FieldTypeCheckbox:
		return true
	default:
		return false
	}
}

// TextLike reports whether min_length applies to the type.
func (t FieldType) TextLike() bool {
	return t == FieldTypeText || t == FieldTypeEmail
}

// ZeroValue returns the initial value used when a field declares no default.
func (t FieldType) ZeroValue() any {
	switch t {
	case FieldTypeCheckbox:
		return false
	case FieldTypeNumber:
		return 0
	case FieldTypeText, FieldTypeEmail, FieldTypeDate, FieldTypeSelect:
		return ""
	default:
		return nil
	}
}

func (t FieldType) String() string {
	return string(t)
}

// UnmarshalJSON rejects unknown type tags.
func (t *FieldType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("schema: field type must be a string: %w", err)
	}
	parsed, err := ParseFieldType(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// UnmarshalYAML rejects unknown type tags.
func (t *FieldType) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("schema: field type must be a string: %w", err)
	}
	parsed, err := ParseFieldType(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
