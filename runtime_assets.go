package dynform

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-dynform/pkg/schema"
)

//go:embed forms/*.json
var embeddedForms embed.FS

// EmployeeFormName is the embedded employee form used when no schema is given.
const EmployeeFormName = "employee.json"

// FormsFS exposes the bundled form schemas so callers can load them through
// schema.SourceFromFS with a loader configured by schema.WithFileSystem.
func FormsFS() fs.FS {
	sub, err := fs.Sub(embeddedForms, "forms")
	if err != nil {
		return embeddedForms
	}
	return sub
}

// EmployeeSchema parses the bundled employee form.
func EmployeeSchema() (schema.FormSchema, error) {
	raw, err := fs.ReadFile(FormsFS(), EmployeeFormName)
	if err != nil {
		return schema.FormSchema{}, err
	}
	return schema.ParseBytes(EmployeeFormName, raw)
}
