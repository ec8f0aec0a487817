package schema

import "errors"

var (
	// ErrUnknownFieldType is returned when a field declares a type outside
	// the FieldType enumeration.
	ErrUnknownFieldType = errors.New("schema: unknown field type")
	// ErrEmptySchema is returned when a document decodes to a form without
	// any fields.
	ErrEmptySchema = errors.New("schema: form declares no fields")
	// ErrMissingControlName flags fields that cannot be addressed.
	ErrMissingControlName = errors.New("schema: field control_name is required")
)
