package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-dynform/pkg/validation"
)

var (
	// ErrConfiguration marks schema defects detected while building a form,
	// such as two fields sharing a control name. The schema must be fixed.
	ErrConfiguration = errors.New("form: configuration error")
	// ErrUnknownControl marks calls that reference a control name the form
	// does not define. It indicates a caller bug.
	ErrUnknownControl = errors.New("form: unknown control")
	// ErrValidation marks a submit attempt on an invalid form. It is the only
	// expected, user-recoverable failure.
	ErrValidation = errors.New("form: validation failed")
)

// ConfigurationError reports a schema defect for a specific control.
type ConfigurationError struct {
	Control string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("form: configuration error: control %q: %s", e.Control, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// UnknownControlError reports a reference to an undefined control.
type UnknownControlError struct {
	Name string
}

func (e *UnknownControlError) Error() string {
	return fmt.Sprintf("form: unknown control %q", e.Name)
}

func (e *UnknownControlError) Unwrap() error {
	return ErrUnknownControl
}

// FieldError describes why one control blocked submission.
type FieldError struct {
	Control string                 `json:"control"`
	Kinds   []validation.ErrorKind `json:"kinds"`
	Message string                 `json:"message"`
}

// ValidationFailure is returned by Submit when at least one control is
// invalid. Fields follow schema order.
type ValidationFailure struct {
	Fields []FieldError
}

func (e *ValidationFailure) Error() string {
	names := make([]string, len(e.Fields))
	for i, field := range e.Fields {
		names[i] = field.Control
	}
	return "form: validation failed: " + strings.Join(names, ", ")
}

func (e *ValidationFailure) Unwrap() error {
	return ErrValidation
}

// Messages maps control names to their display message.
func (e *ValidationFailure) Messages() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, field := range e.Fields {
		out[field.Control] = field.Message
	}
	return out
}
