package form_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynform/pkg/form"
	"github.com/goliatone/go-dynform/pkg/options"
	"github.com/goliatone/go-dynform/pkg/schema"
	"github.com/goliatone/go-dynform/pkg/validation"
)

func floatPtr(v float64) *float64 { return &v }

func singleSection(fields ...schema.FieldSchema) schema.FormSchema {
	return schema.FormSchema{
		ScreenName: "Test",
		Submit:     schema.SubmitAction{Label: "Submit"},
		Sections:   []schema.FormSection{{Name: "Main", Fields: fields}},
	}
}

func mustBuild(t *testing.T, s schema.FormSchema, resolver options.Resolver, opts ...form.Option) *form.State {
	t.Helper()
	state, err := form.Build(s, resolver, opts...)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return state
}

func firstName() schema.FieldSchema {
	return schema.FieldSchema{
		Label:       "First Name",
		Type:        schema.FieldTypeText,
		ControlName: "first_name",
		Required:    true,
	}
}

func TestSubmit_EmptyRequiredFieldFails(t *testing.T) {
	state := mustBuild(t, singleSection(firstName()), nil)

	if state.IsFieldShowingError("first_name") {
		t.Fatalf("expected pristine field to hide its error")
	}

	_, err := state.Submit()
	if !errors.Is(err, form.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	var failure *form.ValidationFailure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *ValidationFailure, got %T", err)
	}
	want := []form.FieldError{{
		Control: "first_name",
		Kinds:   []validation.ErrorKind{validation.Required},
		Message: "First Name is required",
	}}
	if diff := cmp.Diff(want, failure.Fields); diff != "" {
		t.Fatalf("failure mismatch (-want +got):\n%s", diff)
	}
	if !state.IsFieldShowingError("first_name") {
		t.Fatalf("expected submit to reveal the error")
	}
}

func TestSubmit_ValidFormReturnsSnapshot(t *testing.T) {
	state := mustBuild(t, singleSection(firstName()), nil)

	if err := state.SetValue("first_name", "Ann"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	snapshot, err := state.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !state.IsValid() {
		t.Fatalf("expected state to be valid")
	}
	if diff := cmp.Diff(map[string]any{"first_name": "Ann"}, snapshot.Map()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmit_ValidFormLeavesStateAlone(t *testing.T) {
	state := mustBuild(t, singleSection(
		firstName(),
		schema.FieldSchema{Label: "Note", Type: schema.FieldTypeText, ControlName: "note"},
	), nil)

	if err := state.SetValue("first_name", "Ann"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	before := state.Controls()
	if _, err := state.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if diff := cmp.Diff(before, state.Controls()); diff != "" {
		t.Fatalf("valid submit changed controls (-before +after):\n%s", diff)
	}
	note, _ := state.Control("note")
	if note.Touched {
		t.Fatalf("expected note to stay untouched after a valid submit")
	}
}

func TestIsFieldShowingError_DirtyWithoutTouch(t *testing.T) {
	state := mustBuild(t, singleSection(
		schema.FieldSchema{Label: "Email", Type: schema.FieldTypeEmail, ControlName: "email"},
	), nil)

	if err := state.SetValue("email", "not-an-email"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	c, _ := state.Control("email")
	if c.Touched || !c.Dirty {
		t.Fatalf("expected dirty untouched control, got touched=%v dirty=%v", c.Touched, c.Dirty)
	}
	if !state.IsFieldShowingError("email") {
		t.Fatalf("expected edited invalid control to show its error")
	}
	if !c.ShowingError() {
		t.Fatalf("expected control copy to report its error as showing")
	}

	if err := state.SetValue("email", "a@b.com"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if state.IsFieldShowingError("email") {
		t.Fatalf("expected valid control to hide its error")
	}
}

func TestSetValue_StoresCopy(t *testing.T) {
	state := mustBuild(t, singleSection(
		schema.FieldSchema{Label: "Tags", Type: schema.FieldTypeText, ControlName: "tags"},
	), nil)

	tags := []any{"a", "b"}
	if err := state.SetValue("tags", tags); err != nil {
		t.Fatalf("set value: %v", err)
	}
	tags[0] = "mutated"

	got, _ := state.Value("tags")
	if diff := cmp.Diff([]any{"a", "b"}, got); diff != "" {
		t.Fatalf("stored value followed caller mutation (-want +got):\n%s", diff)
	}
}

func TestSubmit_FailureKeepsValues(t *testing.T) {
	state := mustBuild(t, singleSection(
		firstName(),
		schema.FieldSchema{Label: "Email", Type: schema.FieldTypeEmail, ControlName: "email", Required: true},
	), nil)

	_ = state.SetValue("first_name", "Ann")
	_ = state.SetValue("email", "nope")

	if _, err := state.Submit(); err == nil {
		t.Fatalf("expected submit to fail")
	}
	value, _ := state.Value("email")
	if value != "nope" {
		t.Fatalf("expected value to survive failed submit, got %v", value)
	}
	if state.IsFieldShowingError("first_name") {
		t.Fatalf("valid field must not show an error")
	}
}

func TestErrorMessage_Email(t *testing.T) {
	state := mustBuild(t, singleSection(
		schema.FieldSchema{Label: "Email", Type: schema.FieldTypeEmail, ControlName: "email", Required: true},
	), nil)

	if err := state.SetValue("email", "not-an-email"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if got := state.ErrorMessage("email"); got != "Please enter a valid email address" {
		t.Fatalf("unexpected message %q", got)
	}

	if err := state.SetValue("email", "a@b.com"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	errs, err := state.ErrorsFor("email")
	if err != nil {
		t.Fatalf("errors for: %v", err)
	}
	if !errs.Empty() {
		t.Fatalf("expected errors to clear, got %s", errs)
	}
	if got := state.ErrorMessage("email"); got != "" {
		t.Fatalf("expected empty message, got %q", got)
	}
}

func TestErrorMessage_Priority(t *testing.T) {
	state := mustBuild(t, singleSection(
		schema.FieldSchema{Label: "Email", Type: schema.FieldTypeEmail, ControlName: "email", MinLength: 10},
		schema.FieldSchema{Label: "Last Name", Type: schema.FieldTypeText, ControlName: "last_name", Required: true, MinLength: 2},
	), nil)

	_ = state.SetValue("email", "x@y")
	errs, _ := state.ErrorsFor("email")
	if diff := cmp.Diff(validation.Of(validation.InvalidFormat, validation.TooShort), errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if got := state.ErrorMessage("email"); got != "Please enter a valid email address" {
		t.Fatalf("expected format message first, got %q", got)
	}

	if got := state.ErrorMessage("last_name"); got != "Last Name is required" {
		t.Fatalf("unexpected message %q", got)
	}
	_ = state.SetValue("last_name", "D")
	if got := state.ErrorMessage("last_name"); got != "Last Name must be at least 2 characters" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestSetValue_NumericMinimum(t *testing.T) {
	state := mustBuild(t, singleSection(
		schema.FieldSchema{Label: "Role", Type: schema.FieldTypeNumber, ControlName: "role_id", Required: true, Min: floatPtr(1)},
	), nil)

	if err := state.SetValue("role_id", 0); err != nil {
		t.Fatalf("set value: %v", err)
	}
	errs, _ := state.ErrorsFor("role_id")
	if !errs.Has(validation.BelowMinimum) {
		t.Fatalf("expected BelowMinimum, got %s", errs)
	}
	if got := state.ErrorMessage("role_id"); got != "Role must be at least 1" {
		t.Fatalf("unexpected message %q", got)
	}

	if err := state.SetValue("role_id", 2); err != nil {
		t.Fatalf("set value: %v", err)
	}
	errs, _ = state.ErrorsFor("role_id")
	if !errs.Empty() {
		t.Fatalf("expected errors to clear, got %s", errs)
	}
}

func TestSetValue_OnlyRevalidatesTarget(t *testing.T) {
	state := mustBuild(t, singleSection(
		firstName(),
		schema.FieldSchema{Label: "Last Name", Type: schema.FieldTypeText, ControlName: "last_name", Required: true},
	), nil)

	before, _ := state.Control("last_name")
	_ = state.SetValue("first_name", "Ann")
	after, _ := state.Control("last_name")

	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("untouched control changed (-before +after):\n%s", diff)
	}

	first, _ := state.Control("first_name")
	if !first.Dirty || first.Touched {
		t.Fatalf("expected dirty untouched control, got %+v", first)
	}
}

func TestTouch_Idempotent(t *testing.T) {
	state := mustBuild(t, singleSection(firstName()), nil)

	if err := state.Touch("first_name"); err != nil {
		t.Fatalf("touch: %v", err)
	}
	once := state.Controls()
	if err := state.Touch("first_name"); err != nil {
		t.Fatalf("touch: %v", err)
	}
	twice := state.Controls()

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("second touch changed state (-once +twice):\n%s", diff)
	}
}

func TestTouchAll_OnlyChangesTouched(t *testing.T) {
	state := mustBuild(t, singleSection(
		firstName(),
		schema.FieldSchema{Label: "Agree", Type: schema.FieldTypeCheckbox, ControlName: "agree"},
	), nil)
	_ = state.SetValue("first_name", "A")

	before := state.Controls()
	state.TouchAll()
	after := state.Controls()

	for i := range before {
		if !after[i].Touched {
			t.Fatalf("expected %s to be touched", after[i].Name)
		}
		before[i].Touched = true
	}
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("touchAll changed more than touched (-want +got):\n%s", diff)
	}
}

func TestUnknownControl(t *testing.T) {
	state := mustBuild(t, singleSection(firstName()), nil)

	checks := map[string]error{
		"set":   state.SetValue("missing", "x"),
		"touch": state.Touch("missing"),
	}
	_, checks["errors"] = state.ErrorsFor("missing")

	for name, err := range checks {
		if !errors.Is(err, form.ErrUnknownControl) {
			t.Fatalf("%s: expected ErrUnknownControl, got %v", name, err)
		}
		var unknown *form.UnknownControlError
		if !errors.As(err, &unknown) || unknown.Name != "missing" {
			t.Fatalf("%s: expected UnknownControlError for missing, got %v", name, err)
		}
	}

	if state.ErrorMessage("missing") != "" || state.IsFieldShowingError("missing") {
		t.Fatalf("expected unknown names to report no error")
	}
	if _, ok := state.Control("missing"); ok {
		t.Fatalf("expected unknown control lookup to fail")
	}
	if diff := cmp.Diff([]string{"first_name"}, state.Names()); diff != "" {
		t.Fatalf("key set changed (-want +got):\n%s", diff)
	}
}

func TestCheckboxFalseIsNeverRequiredInvalid(t *testing.T) {
	state := mustBuild(t, singleSection(
		schema.FieldSchema{Label: "Terms", Type: schema.FieldTypeCheckbox, ControlName: "terms", Required: true},
	), nil)

	if !state.IsValid() {
		t.Fatalf("expected unticked required checkbox to be valid")
	}
	snapshot, err := state.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if value, _ := snapshot.Get("terms"); value != false {
		t.Fatalf("expected false, got %v", value)
	}
}

type translatorFunc func(locale, key string, args ...any) (string, error)

func (fn translatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return fn(locale, key, args...)
}

func TestErrorMessage_Translator(t *testing.T) {
	translator := translatorFunc(func(locale, key string, args ...any) (string, error) {
		if locale == "es" && key == form.MessageKeyRequired {
			return fmt.Sprintf("%s es obligatorio", args...), nil
		}
		return "", errors.New("missing")
	})

	state := mustBuild(t, singleSection(
		firstName(),
		schema.FieldSchema{Label: "Email", Type: schema.FieldTypeEmail, ControlName: "email"},
	), nil, form.WithTranslator(translator), form.WithLocale("es"))
	_ = state.SetValue("email", "bad")

	if got := state.ErrorMessage("first_name"); got != "First Name es obligatorio" {
		t.Fatalf("unexpected translated message %q", got)
	}
	if got := state.ErrorMessage("email"); got != "Please enter a valid email address" {
		t.Fatalf("expected fallback message, got %q", got)
	}
}

func TestSnapshot_OrderedJSON(t *testing.T) {
	state := mustBuild(t, singleSection(
		schema.FieldSchema{Label: "Z", Type: schema.FieldTypeText, ControlName: "zeta", Default: "z"},
		schema.FieldSchema{Label: "A", Type: schema.FieldTypeNumber, ControlName: "alpha"},
		schema.FieldSchema{Label: "M", Type: schema.FieldTypeCheckbox, ControlName: "mid"},
	), nil)

	snapshot, err := state.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(raw), `{"zeta":"z","alpha":0,"mid":false}`; got != want {
		t.Fatalf("json mismatch: got %s want %s", got, want)
	}

	values := snapshot.Map()
	values["zeta"] = "changed"
	if value, _ := snapshot.Get("zeta"); value != "z" {
		t.Fatalf("snapshot mutated through Map copy")
	}

	_ = state.SetValue("zeta", "later")
	if value, _ := snapshot.Get("zeta"); value != "z" {
		t.Fatalf("snapshot mutated by later SetValue")
	}
}
