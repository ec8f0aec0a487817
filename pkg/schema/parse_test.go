package schema_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynform/pkg/schema"
)

func mustParseFile(t *testing.T, name string) schema.FormSchema {
	t.Helper()

	path := filepath.Join("testdata", name)
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	form, err := schema.ParseBytes(name, raw)
	if err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	return form
}

func TestParse_EmployeeJSON(t *testing.T) {
	form := mustParseFile(t, "employee.json")

	if form.ScreenName != "Create Employee" {
		t.Fatalf("unexpected screen name %q", form.ScreenName)
	}
	if form.Submit.Target != "api/v1/employees" || form.Submit.Redirect != "/home/hr/employees/list" {
		t.Fatalf("unexpected submit action %+v", form.Submit)
	}
	if len(form.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(form.Sections))
	}

	var names []string
	for _, field := range form.Fields() {
		names = append(names, field.ControlName)
	}
	want := []string{
		"first_name", "last_name", "email", "phone_number", "department_id",
		"job_title", "employment_type", "joining_date", "salary",
		"role_id", "is_active",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	active, ok := form.Field("is_active")
	if !ok {
		t.Fatalf("expected is_active field")
	}
	if active.Type != schema.FieldTypeCheckbox || active.Default != true {
		t.Fatalf("unexpected is_active %+v", active)
	}

	dept, _ := form.Field("department_id")
	if dept.OptionSource != "api/v1/departments" {
		t.Fatalf("expected api source, got %q", dept.OptionSource)
	}
}

func TestParse_YAMLMatchesJSON(t *testing.T) {
	fromJSON := mustParseFile(t, "employee.json")
	fromYAML := mustParseFile(t, "employee.yaml")

	if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
		t.Fatalf("json/yaml mismatch (-json +yaml):\n%s", diff)
	}
}

func TestParse_UnknownFieldType(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "unknown_type.yaml"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	_, err = schema.ParseBytes("unknown_type.yaml", raw)
	if !errors.Is(err, schema.ErrUnknownFieldType) {
		t.Fatalf("expected ErrUnknownFieldType, got %v", err)
	}
}

func TestParse_EmptySchema(t *testing.T) {
	_, err := schema.ParseBytes("empty.json", []byte(`{"screen_name":"Nothing","sections":[]}`))
	if !errors.Is(err, schema.ErrEmptySchema) {
		t.Fatalf("expected ErrEmptySchema, got %v", err)
	}
}

func TestParse_MissingControlName(t *testing.T) {
	raw := []byte(`{"sections":[{"section_name":"A","fields":[{"label":"Name","placeholder":"","type":"text"}]}]}`)
	_, err := schema.ParseBytes("missing.json", raw)
	if !errors.Is(err, schema.ErrMissingControlName) {
		t.Fatalf("expected ErrMissingControlName, got %v", err)
	}
}

func TestParse_UnknownKeysRejected(t *testing.T) {
	raw := []byte(`{"screen_name":"X","sections":[{"section_name":"A","fields":[{"label":"Name","placeholder":"","type":"text","control_name":"name","colour":"red"}]}]}`)
	if _, err := schema.ParseBytes("extra.json", raw); err == nil {
		t.Fatalf("expected unknown key to be rejected")
	}
}

func TestParse_SanitisesDisplayText(t *testing.T) {
	raw := []byte(`
screen_name: "<b>R&D</b> Intake"
submit_button: { label: "<i>Send</i>" }
sections:
  - section_name: "<script>alert(1)</script>Main"
    fields:
      - { label: "<em>Name</em>", placeholder: "<u>Your name</u>", type: text, control_name: name }
`)
	form, err := schema.ParseBytes("intake.yaml", raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if form.ScreenName != "R&D Intake" {
		t.Fatalf("unexpected screen name %q", form.ScreenName)
	}
	if form.Submit.Label != "Send" {
		t.Fatalf("unexpected submit label %q", form.Submit.Label)
	}
	if form.Sections[0].Name != "Main" {
		t.Fatalf("unexpected section name %q", form.Sections[0].Name)
	}
	field := form.Sections[0].Fields[0]
	if field.Label != "Name" || field.Placeholder != "Your name" {
		t.Fatalf("unexpected field text %+v", field)
	}
}

func TestParse_NumericConstraints(t *testing.T) {
	raw := []byte(`
screen_name: Access
sections:
  - section_name: Roles
    fields:
      - { label: Role, placeholder: "", type: number, control_name: role_id, required: true, min: 1 }
      - { label: Name, placeholder: "", type: TEXT, control_name: name, min_length: 2 }
`)
	form, err := schema.ParseBytes("access.yaml", raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	role, _ := form.Field("role_id")
	if role.Minimum() != 1 {
		t.Fatalf("expected minimum 1, got %v", role.Minimum())
	}
	name, _ := form.Field("name")
	if name.Type != schema.FieldTypeText || name.MinLength != 2 {
		t.Fatalf("unexpected name field %+v", name)
	}
	if name.Minimum() != 0 {
		t.Fatalf("expected default minimum 0, got %v", name.Minimum())
	}
}
