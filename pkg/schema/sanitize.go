package schema

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Sanitize returns a copy of s with markup stripped from every human-facing
// string. Control names, option sources and options are left untouched.
func Sanitize(s FormSchema) FormSchema {
	out := s
	out.ScreenName = sanitizeText(s.ScreenName)
	out.Submit.Label = sanitizeText(s.Submit.Label)
	out.Sections = make([]FormSection, len(s.Sections))
	for i, section := range s.Sections {
		fields := make([]FieldSchema, len(section.Fields))
		for j, field := range section.Fields {
			field.Label = sanitizeText(field.Label)
			field.Placeholder = sanitizeText(field.Placeholder)
			fields[j] = field
		}
		out.Sections[i] = FormSection{
			Name:   sanitizeText(section.Name),
			Fields: fields,
		}
	}
	return out
}

func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := textSanitizer().Sanitize(trimmed)
	// The strict policy escapes entities; labels are plain text.
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
