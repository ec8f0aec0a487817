package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-dynform/pkg/schema"
	"github.com/goliatone/go-dynform/pkg/validation"
)

// Message keys handed to a Translator. Arguments are the field label followed
// by the rule threshold where one applies.
const (
	MessageKeyRequired      = "validation.required"
	MessageKeyInvalidFormat = "validation.invalid_format"
	MessageKeyTooShort      = "validation.too_short"
	MessageKeyBelowMinimum  = "validation.below_minimum"
)

// Translator resolves localized messages.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

type messages struct {
	translator Translator
	locale     string
}

func (m messages) message(field schema.FieldSchema, kind validation.ErrorKind) string {
	key, fallback, args := describe(field, kind)
	if m.translator == nil {
		return fallback
	}
	translated, err := m.translator.Translate(m.locale, key, args...)
	if err != nil || strings.TrimSpace(translated) == "" {
		return fallback
	}
	return translated
}

func describe(field schema.FieldSchema, kind validation.ErrorKind) (string, string, []any) {
	label := displayLabel(field)
	switch kind {
	case validation.Required:
		return MessageKeyRequired, fmt.Sprintf("%s is required", label), []any{label}
	case validation.InvalidFormat:
		return MessageKeyInvalidFormat, "Please enter a valid email address", []any{label}
	case validation.TooShort:
		return MessageKeyTooShort,
			fmt.Sprintf("%s must be at least %d characters", label, field.MinLength),
			[]any{label, field.MinLength}
	case validation.BelowMinimum:
		min := strconv.FormatFloat(field.Minimum(), 'f', -1, 64)
		return MessageKeyBelowMinimum, fmt.Sprintf("%s must be at least %s", label, min), []any{label, min}
	default:
		return "", "", nil
	}
}

func displayLabel(field schema.FieldSchema) string {
	if label := strings.TrimSpace(field.Label); label != "" {
		return label
	}
	return field.ControlName
}
