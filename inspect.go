package dynform

import (
	"github.com/goliatone/go-dynform/pkg/form"
	"github.com/goliatone/go-dynform/pkg/validation"
)

// ControlReport summarises one control for tooling output.
type ControlReport struct {
	Name     string                  `json:"name"`
	Label    string                  `json:"label"`
	Type     string                  `json:"type"`
	Required bool                    `json:"required"`
	Value    any                     `json:"value"`
	Options  []string                `json:"options,omitempty"`
	Rules    []validation.Definition `json:"rules,omitempty"`
	Errors   validation.Errors       `json:"errors"`
	Message  string                  `json:"message,omitempty"`
}

// Report summarises a form state.
type Report struct {
	Screen   string          `json:"screen"`
	Valid    bool            `json:"valid"`
	Controls []ControlReport `json:"controls"`
}

// Inspect captures the current state of every control in schema order.
func Inspect(state *form.State) Report {
	report := Report{
		Screen: state.Schema().ScreenName,
		Valid:  state.IsValid(),
	}
	for _, c := range state.Controls() {
		report.Controls = append(report.Controls, ControlReport{
			Name:     c.Name,
			Label:    c.Field.Label,
			Type:     c.Field.Type.String(),
			Required: c.Field.Required,
			Value:    c.Value,
			Options:  c.Options,
			Rules:    c.Rules,
			Errors:   c.Errors,
			Message:  state.ErrorMessage(c.Name),
		})
	}
	return report
}
