package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-dynform/pkg/schema"
)

const (
	RuleRequired  = "required"
	RuleEmail     = "email"
	RuleMin       = "min"
	RuleMinLength = "minLength"
)

// emailPattern accepts the local@domain.tld shape. The top level label must be
// alphabetic and at least two characters long.
var emailPattern = regexp.MustCompile(
	"^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@" +
		`[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?` +
		`(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*` +
		`\.[a-zA-Z]{2,}$`,
)

// Definition describes a rule in a serialisable form. Numeric thresholds are
// stored in Params["value"].
type Definition struct {
	Kind   string            `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
}

// Rule is a single constraint. Check reports the kind violated by value, if
// any.
type Rule interface {
	Definition() Definition
	Check(value any) (ErrorKind, bool)
}

type requiredRule struct {
	checkbox bool
}

func (r requiredRule) Definition() Definition {
	return Definition{Kind: RuleRequired}
}

// A checkbox left unticked is a completed answer, so false never fails
// presence for checkbox fields.
func (r requiredRule) Check(value any) (ErrorKind, bool) {
	switch typed := value.(type) {
	case nil:
		return Required, true
	case string:
		return Required, typed == ""
	case bool:
		return Required, !typed && !r.checkbox
	default:
		return Required, false
	}
}

type emailRule struct{}

func (emailRule) Definition() Definition {
	return Definition{Kind: RuleEmail}
}

func (emailRule) Check(value any) (ErrorKind, bool) {
	text, ok := asText(value)
	if !ok || text == "" {
		return InvalidFormat, false
	}
	return InvalidFormat, !emailPattern.MatchString(text)
}

type minimumRule struct {
	min float64
}

func (r minimumRule) Definition() Definition {
	return Definition{
		Kind:   RuleMin,
		Params: map[string]string{"value": strconv.FormatFloat(r.min, 'f', -1, 64)},
	}
}

func (r minimumRule) Check(value any) (ErrorKind, bool) {
	number, ok := asNumber(value)
	if !ok {
		return BelowMinimum, false
	}
	return BelowMinimum, number < r.min
}

type minLengthRule struct {
	length int
}

func (r minLengthRule) Definition() Definition {
	return Definition{
		Kind:   RuleMinLength,
		Params: map[string]string{"value": strconv.Itoa(r.length)},
	}
}

func (r minLengthRule) Check(value any) (ErrorKind, bool) {
	text, ok := asText(value)
	if !ok || text == "" {
		return TooShort, false
	}
	return TooShort, utf8.RuneCountInString(strings.TrimSpace(text)) < r.length
}

// RuleSet is the ordered list of rules for one field.
type RuleSet []Rule

// For derives the rules for a field. Order is fixed: presence, format,
// numeric minimum, length minimum.
func For(field schema.FieldSchema) RuleSet {
	var rules RuleSet
	if field.Required {
		rules = append(rules, requiredRule{checkbox: field.Type == schema.FieldTypeCheckbox})
	}

	switch field.Type {
	case schema.FieldTypeEmail:
		rules = append(rules, emailRule{})
		rules = withMinLength(rules, field)
	case schema.FieldTypeNumber:
		rules = append(rules, minimumRule{min: field.Minimum()})
	case schema.FieldTypeText:
		rules = withMinLength(rules, field)
	case schema.FieldTypeDate, schema.FieldTypeSelect, schema.FieldTypeCheckbox:
	}
	return rules
}

func withMinLength(rules RuleSet, field schema.FieldSchema) RuleSet {
	if field.MinLength <= 0 {
		return rules
	}
	return append(rules, minLengthRule{length: field.MinLength})
}

// Evaluate runs every rule and returns all violated kinds.
func (rs RuleSet) Evaluate(value any) Errors {
	var errs Errors
	for _, rule := range rs {
		if kind, failed := rule.Check(value); failed {
			errs = errs.With(kind)
		}
	}
	return errs
}

// Definitions describes the rule set for inspection and snapshots.
func (rs RuleSet) Definitions() []Definition {
	if len(rs) == 0 {
		return nil
	}
	out := make([]Definition, len(rs))
	for i, rule := range rs {
		out[i] = rule.Definition()
	}
	return out
}
