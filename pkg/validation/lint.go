package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/goliatone/go-dynform/pkg/schema"
)

// Severity grades a SchemaIssue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// SchemaIssue represents a schema problem with optional location metadata.
type SchemaIssue struct {
	Path     string   `json:"path,omitempty"`
	Field    string   `json:"field,omitempty"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// SchemaValidationResult captures lint outcomes for schema previews. Valid is
// false when at least one issue has SeverityError.
type SchemaValidationResult struct {
	Valid  bool          `json:"valid"`
	Issues []SchemaIssue `json:"issues,omitempty"`
}

// ValidateSchema parses raw and lints the decoded form. Decode failures yield
// a single issue since nothing past the first syntax error is trustworthy.
func ValidateSchema(src schema.Source, raw []byte) SchemaValidationResult {
	if src == nil {
		src = schema.SourceFromFS("schema.json")
	}

	doc, err := schema.NewDocument(src, raw)
	if err != nil {
		return failed(issueFromError(err))
	}
	parsed, err := schema.Parse(doc)
	if err != nil {
		return failed(issueFromError(err))
	}
	return Lint(parsed)
}

// Lint reports problems the parser accepts but the form builder or a renderer
// would trip over. All issues are collected rather than stopping at the first.
func Lint(s schema.FormSchema) SchemaValidationResult {
	var issues []SchemaIssue
	seen := make(map[string]string)

	for si, section := range s.Sections {
		if len(section.Fields) == 0 {
			issues = append(issues, SchemaIssue{
				Path:     fmt.Sprintf("sections[%d]", si),
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("section %q declares no fields", section.Name),
			})
		}
		for fi, field := range section.Fields {
			path := fmt.Sprintf("sections[%d].fields[%d]", si, fi)
			issues = append(issues, lintField(path, field)...)

			if field.ControlName == "" {
				continue
			}
			if first, dup := seen[field.ControlName]; dup {
				issues = append(issues, SchemaIssue{
					Path:     path,
					Field:    field.ControlName,
					Severity: SeverityError,
					Message:  "duplicate control name, first declared at " + first,
				})
				continue
			}
			seen[field.ControlName] = path
		}
	}

	result := SchemaValidationResult{Valid: true, Issues: issues}
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			result.Valid = false
			break
		}
	}
	return result
}

func lintField(path string, field schema.FieldSchema) []SchemaIssue {
	var out []SchemaIssue
	add := func(sev Severity, format string, args ...any) {
		out = append(out, SchemaIssue{
			Path:     path,
			Field:    field.ControlName,
			Severity: sev,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	if field.ControlName == "" {
		add(SeverityError, "missing control name on field %q", field.Label)
	}
	if strings.TrimSpace(field.Label) == "" {
		add(SeverityWarning, "field has no label")
	}
	if field.Type == schema.FieldTypeSelect && len(field.Options) == 0 && field.OptionSource == "" {
		add(SeverityWarning, "select declares neither options nor an api source")
	}
	if len(field.Options) > 0 && field.OptionSource != "" {
		add(SeverityWarning, "options take precedence, api source %q is ignored", field.OptionSource)
	}
	if field.Min != nil && field.Type != schema.FieldTypeNumber {
		add(SeverityWarning, "min only applies to number fields")
	}
	if field.MinLength > 0 && !field.Type.TextLike() {
		add(SeverityWarning, "min_length only applies to text and email fields")
	}
	if field.HasDefault() {
		if msg := defaultMismatch(field); msg != "" {
			add(SeverityError, "%s", msg)
		}
	}
	return out
}

func defaultMismatch(field schema.FieldSchema) string {
	switch field.Type {
	case schema.FieldTypeCheckbox:
		if _, ok := field.Default.(bool); !ok {
			return fmt.Sprintf("checkbox default must be a boolean, got %T", field.Default)
		}
	case schema.FieldTypeNumber:
		if _, err := cast.ToFloat64E(field.Default); err != nil {
			return fmt.Sprintf("number default %v is not numeric", field.Default)
		}
	case schema.FieldTypeSelect:
		if len(field.Options) == 0 {
			return ""
		}
		value := cast.ToString(field.Default)
		for _, opt := range field.Options {
			if opt == value {
				return ""
			}
		}
		return fmt.Sprintf("default %q is not one of the declared options", value)
	}
	return ""
}

func failed(issue SchemaIssue) SchemaValidationResult {
	return SchemaValidationResult{Valid: false, Issues: []SchemaIssue{issue}}
}

func issueFromError(err error) SchemaIssue {
	if err == nil {
		return SchemaIssue{Severity: SeverityError, Message: "unknown error"}
	}
	msg := strings.TrimSpace(err.Error())
	for _, prefix := range []string{"schema: ", "schema loader: "} {
		msg = strings.TrimPrefix(msg, prefix)
	}

	issue := SchemaIssue{Severity: SeverityError, Message: msg}
	if errors.Is(err, schema.ErrEmptySchema) {
		issue.Path = "sections"
	}
	return issue
}
