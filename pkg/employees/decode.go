package employees

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"

	"github.com/goliatone/go-dynform/pkg/form"
)

var (
	ErrUnknownDepartment = errors.New("employees: unknown department")
	ErrUnknownRole       = errors.New("employees: unknown role")
)

// FromSnapshot decodes a submitted employee form.
func FromSnapshot(snapshot form.Snapshot, dir *Directory) (Employee, error) {
	return FromValues(snapshot.Map(), dir)
}

// FromValues decodes raw form values into an Employee. Select fields may carry
// either the department/role display name or its numeric id; names are
// resolved through dir. Scalar values are converted leniently so "75000" and
// 75000 both decode into Salary.
func FromValues(values map[string]any, dir *Directory) (Employee, error) {
	if dir == nil {
		dir = DefaultDirectory()
	}
	input := make(map[string]any, len(values))
	for k, v := range values {
		input[k] = v
	}

	if raw, ok := input["department_id"]; ok {
		id, err := lookupID(raw, func(name string) (int, bool) {
			dept, ok := dir.DepartmentByName(name)
			return dept.ID, ok
		}, func(id int) bool {
			_, ok := dir.Department(id)
			return ok
		})
		if err != nil {
			return Employee{}, fmt.Errorf("%w: %v", ErrUnknownDepartment, raw)
		}
		input["department_id"] = id
	}
	if raw, ok := input["role_id"]; ok {
		id, err := lookupID(raw, func(name string) (int, bool) {
			role, ok := dir.RoleByName(name)
			return role.ID, ok
		}, func(id int) bool {
			_, ok := dir.Role(id)
			return ok
		})
		if err != nil {
			return Employee{}, fmt.Errorf("%w: %v", ErrUnknownRole, raw)
		}
		input["role_id"] = id
	}

	var out Employee
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           &out,
	})
	if err != nil {
		return Employee{}, fmt.Errorf("employees: build decoder: %w", err)
	}
	if err := decoder.Decode(input); err != nil {
		return Employee{}, fmt.Errorf("employees: decode values: %w", err)
	}
	return out, nil
}

var errNoMatch = errors.New("no match")

func lookupID(raw any, byName func(string) (int, bool), known func(int) bool) (int, error) {
	if text, ok := raw.(string); ok {
		text = strings.TrimSpace(text)
		if id, found := byName(text); found {
			return id, nil
		}
		if text == "" {
			return 0, nil
		}
	}
	id, err := cast.ToIntE(raw)
	if err != nil || !known(id) {
		return 0, errNoMatch
	}
	return id, nil
}
