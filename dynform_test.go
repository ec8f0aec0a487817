package dynform_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynform"
	"github.com/goliatone/go-dynform/pkg/employees"
	"github.com/goliatone/go-dynform/pkg/form"
	"github.com/goliatone/go-dynform/pkg/options"
	"github.com/goliatone/go-dynform/pkg/schema"
	"github.com/goliatone/go-dynform/pkg/testsupport"
)

func TestEmployeeSchema_Embedded(t *testing.T) {
	s, err := dynform.EmployeeSchema()
	if err != nil {
		t.Fatalf("employee schema: %v", err)
	}
	if s.ScreenName != "Create Employee" {
		t.Fatalf("unexpected screen %q", s.ScreenName)
	}
	if diff := cmp.Diff([]string{employees.DepartmentsSource, employees.RolesSource}, s.SourceIDs()); diff != "" {
		t.Fatalf("source ids mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSchema_FromFormsFS(t *testing.T) {
	ctx := testsupport.Context(t)
	s, err := dynform.LoadSchema(ctx, schema.SourceFromFS(dynform.EmployeeFormName), schema.WithFileSystem(dynform.FormsFS()))
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	if got := len(s.Fields()); got != 11 {
		t.Fatalf("expected 11 fields, got %d", got)
	}
}

func TestNewForm_InspectGolden(t *testing.T) {
	s, err := dynform.EmployeeSchema()
	if err != nil {
		t.Fatalf("employee schema: %v", err)
	}
	state, err := dynform.NewForm(context.Background(), s, dynform.WithResolver(employees.DefaultDirectory().Resolver()))
	if err != nil {
		t.Fatalf("new form: %v", err)
	}

	if diff := testsupport.CompareGoldenJSON(t, "testdata/employee_inspect.golden.json", dynform.Inspect(state)); diff != "" {
		t.Fatalf("inspect mismatch (-want +got):\n%s", diff)
	}
}

func TestNewForm_PrefetchWinsOverResolver(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/departments":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":1,"name":"Research"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	s, err := dynform.EmployeeSchema()
	if err != nil {
		t.Fatalf("employee schema: %v", err)
	}
	state, err := dynform.NewForm(context.Background(), s,
		dynform.WithFetcher(options.NewHTTPFetcher(server.URL)),
		dynform.WithResolver(employees.DefaultDirectory().Resolver()),
	)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}

	if diff := cmp.Diff([]string{"Research"}, state.Options("department_id")); diff != "" {
		t.Fatalf("department options mismatch (-want +got):\n%s", diff)
	}
	// roles 404 on the server and fall back to the directory.
	if diff := cmp.Diff([]string{"Admin", "Manager", "Employee", "Intern"}, state.Options("role_id")); diff != "" {
		t.Fatalf("role options mismatch (-want +got):\n%s", diff)
	}
}

func TestNewForm_PrefetchFailure(t *testing.T) {
	failing := options.FetcherFunc(func(context.Context, string) ([]string, error) {
		return nil, errors.New("boom")
	})
	s, err := dynform.EmployeeSchema()
	if err != nil {
		t.Fatalf("employee schema: %v", err)
	}

	if _, err := dynform.NewForm(context.Background(), s, dynform.WithFetcher(failing)); err == nil {
		t.Fatalf("expected prefetch error")
	}

	state, err := dynform.NewForm(context.Background(), s, dynform.WithFetcher(failing), dynform.WithTolerateFetchErrors())
	if err != nil {
		t.Fatalf("new form with tolerance: %v", err)
	}
	if got := state.Options("department_id"); len(got) != 0 {
		t.Fatalf("expected no options, got %v", got)
	}
}

func TestNewForm_ForwardsFormOptions(t *testing.T) {
	s, err := dynform.EmployeeSchema()
	if err != nil {
		t.Fatalf("employee schema: %v", err)
	}
	state, err := dynform.NewForm(context.Background(), s, dynform.WithFormOptions(form.WithLocale("fr")))
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	if got := state.ErrorMessage("first_name"); got != "First Name is required" {
		t.Fatalf("unexpected message %q", got)
	}
}
