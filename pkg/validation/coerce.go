package validation

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
)

// asText renders scalar values as strings. Booleans are excluded so a
// checkbox value never satisfies text constraints by accident.
func asText(value any) (string, bool) {
	switch value.(type) {
	case nil, bool:
		return "", false
	}
	text, err := cast.ToStringE(value)
	if err != nil {
		return "", false
	}
	return text, true
}

// asNumber accepts integers, floats, json.Number and numeric strings. Empty
// strings and booleans are not numbers.
func asNumber(value any) (float64, bool) {
	switch typed := value.(type) {
	case nil, bool:
		return 0, false
	case string:
		if strings.TrimSpace(typed) == "" {
			return 0, false
		}
		value = strings.TrimSpace(typed)
	case json.Number:
		f, err := typed.Float64()
		return f, err == nil
	}
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, false
	}
	return f, true
}

// AsNumber exposes the numeric coercion used by the minimum rule so callers
// can normalise raw input the same way.
func AsNumber(value any) (float64, bool) {
	return asNumber(value)
}
