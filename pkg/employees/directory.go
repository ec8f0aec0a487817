package employees

import (
	"strings"

	"github.com/goliatone/go-dynform/pkg/options"
)

// Option source ids served by a Directory.
const (
	DepartmentsSource = "api/v1/departments"
	RolesSource       = "api/v1/roles"
)

// Department is a read-only lookup entry.
type Department struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Role is a read-only lookup entry.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Directory holds the department and role tables. It is immutable after
// construction and safe to share.
type Directory struct {
	departments []Department
	roles       []Role
}

// NewDirectory copies the supplied tables.
func NewDirectory(departments []Department, roles []Role) *Directory {
	return &Directory{
		departments: append([]Department(nil), departments...),
		roles:       append([]Role(nil), roles...),
	}
}

// DefaultDirectory returns the stock organisation tables.
func DefaultDirectory() *Directory {
	return NewDirectory(
		[]Department{
			{ID: 1, Name: "Engineering"},
			{ID: 2, Name: "Human Resources"},
			{ID: 3, Name: "Marketing"},
			{ID: 4, Name: "Finance"},
		},
		[]Role{
			{ID: 1, Name: "Admin"},
			{ID: 2, Name: "Manager"},
			{ID: 3, Name: "Employee"},
			{ID: 4, Name: "Intern"},
		},
	)
}

func (d *Directory) Departments() []Department {
	return append([]Department(nil), d.departments...)
}

func (d *Directory) Roles() []Role {
	return append([]Role(nil), d.roles...)
}

func (d *Directory) Department(id int) (Department, bool) {
	for _, dept := range d.departments {
		if dept.ID == id {
			return dept, true
		}
	}
	return Department{}, false
}

func (d *Directory) Role(id int) (Role, bool) {
	for _, role := range d.roles {
		if role.ID == id {
			return role, true
		}
	}
	return Role{}, false
}

// DepartmentByName matches names case-insensitively.
func (d *Directory) DepartmentByName(name string) (Department, bool) {
	for _, dept := range d.departments {
		if strings.EqualFold(dept.Name, strings.TrimSpace(name)) {
			return dept, true
		}
	}
	return Department{}, false
}

// RoleByName matches names case-insensitively.
func (d *Directory) RoleByName(name string) (Role, bool) {
	for _, role := range d.roles {
		if strings.EqualFold(role.Name, strings.TrimSpace(name)) {
			return role, true
		}
	}
	return Role{}, false
}

// Resolver exposes the tables as option sources for select fields.
func (d *Directory) Resolver() *options.Lookup {
	return options.NewLookup(map[string]options.Lister{
		DepartmentsSource: options.ListerFunc(func() []string {
			names := make([]string, len(d.departments))
			for i, dept := range d.departments {
				names[i] = dept.Name
			}
			return names
		}),
		RolesSource: options.ListerFunc(func() []string {
			names := make([]string, len(d.roles))
			for i, role := range d.roles {
				names[i] = role.Name
			}
			return names
		}),
	})
}
