package validation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorKind identifies a violated constraint. Kinds are ordered by message
// priority: lower values win when a single message must be chosen.
type ErrorKind uint8

const (
	Required ErrorKind = 1 << iota
	InvalidFormat
	TooShort
	BelowMinimum
)

var kindOrder = []ErrorKind{Required, InvalidFormat, TooShort, BelowMinimum}

func (k ErrorKind) String() string {
	switch k {
	case Required:
		return "required"
	case InvalidFormat:
		return "invalid_format"
	case TooShort:
		return "too_short"
	case BelowMinimum:
		return "below_minimum"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind using its stable identifier.
func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind identifier.
func (k *ErrorKind) UnmarshalText(text []byte) error {
	for _, kind := range kindOrder {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("validation: unknown error kind %q", text)
}

// Errors is the set of kinds currently violated by a value. The zero value is
// the empty set.
type Errors uint8

// Of builds a set from the supplied kinds.
func Of(kinds ...ErrorKind) Errors {
	var out Errors
	for _, kind := range kinds {
		out = out.With(kind)
	}
	return out
}

// With returns a copy of e including kind.
func (e Errors) With(kind ErrorKind) Errors {
	return e | Errors(kind)
}

// Has reports whether kind is present.
func (e Errors) Has(kind ErrorKind) bool {
	return e&Errors(kind) != 0
}

// Empty reports whether no constraint is violated.
func (e Errors) Empty() bool {
	return e == 0
}

// Len returns the number of violated kinds.
func (e Errors) Len() int {
	return len(e.Kinds())
}

// Kinds lists the violated kinds in priority order.
func (e Errors) Kinds() []ErrorKind {
	if e.Empty() {
		return nil
	}
	var out []ErrorKind
	for _, kind := range kindOrder {
		if e.Has(kind) {
			out = append(out, kind)
		}
	}
	return out
}

// First returns the highest priority kind, or false when the set is empty.
func (e Errors) First() (ErrorKind, bool) {
	for _, kind := range kindOrder {
		if e.Has(kind) {
			return kind, true
		}
	}
	return 0, false
}

func (e Errors) String() string {
	kinds := e.Kinds()
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = kind.String()
	}
	return "[" + strings.Join(names, ",") + "]"
}

// MarshalJSON encodes the set as a list of kind identifiers in priority order.
func (e Errors) MarshalJSON() ([]byte, error) {
	kinds := e.Kinds()
	if kinds == nil {
		kinds = []ErrorKind{}
	}
	return json.Marshal(kinds)
}

// UnmarshalJSON decodes a list of kind identifiers.
func (e *Errors) UnmarshalJSON(data []byte) error {
	var kinds []ErrorKind
	if err := json.Unmarshal(data, &kinds); err != nil {
		return err
	}
	*e = Of(kinds...)
	return nil
}
