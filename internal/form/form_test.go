package form

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type kbData struct {
	Name string
	URL  string
}

func nameRef(d *kbData) *string { return &d.Name }
func urlRef(d *kbData) *string  { return &d.URL }

func requiredConfig() Config[kbData] {
	return Config[kbData]{
		"name": Field[kbData, string]{Required: true, Ref: nameRef},
		"url":  Field[kbData, string]{Required: true, Ref: urlRef},
	}
}

func mustNew[T any](t *testing.T, config Config[T]) *Form[T] {
	t.Helper()
	f, err := New(config)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return f
}

func TestNewInitialisesDefaults(t *testing.T) {
	f := mustNew(t, Config[kbData]{
		"name": Field[kbData, string]{Required: true, Default: "faq", Ref: nameRef},
		"url":  Field[kbData, string]{Required: true, Ref: urlRef},
	})

	if diff := cmp.Diff(kbData{Name: "faq"}, f.Data()); diff != "" {
		t.Errorf("Data() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"name": "faq", "url": ""}, f.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"url": RequiredMessage}, f.Errors()); diff != "" {
		t.Errorf("Errors() mismatch (-want +got):\n%s", diff)
	}
	if !f.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
	if f.Dirty() {
		t.Error("Dirty() = true right after construction")
	}
}

func TestNewRejectsMalformedConfig(t *testing.T) {
	tests := []struct {
		name   string
		config Config[kbData]
	}{
		{"empty config", Config[kbData]{}},
		{"nil binding", Config[kbData]{"name": nil}},
		{"missing Ref", Config[kbData]{"name": Field[kbData, string]{Required: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.config)
			if !IsConfigError(err) {
				t.Errorf("New() error = %v, want configuration error", err)
			}
		})
	}
}

// Scenario from the knowledge base edit dialog: both fields required.
func TestRequiredFieldsScenario(t *testing.T) {
	f := mustNew(t, requiredConfig())

	if !f.HasErrors() {
		t.Fatal("initial HasErrors() = false, want true")
	}

	if err := f.UpdateField("name", "KB1"); err != nil {
		t.Fatalf("UpdateField(name) error = %v", err)
	}
	if msg := f.Error("name"); msg != "" {
		t.Errorf("Error(name) = %q, want none", msg)
	}
	if !f.HasErrors() {
		t.Error("HasErrors() = false while url is still empty")
	}

	if err := f.UpdateField("url", "https://a.b/faq"); err != nil {
		t.Fatalf("UpdateField(url) error = %v", err)
	}
	if f.HasErrors() {
		t.Errorf("HasErrors() = true, errors = %v", f.Errors())
	}
}

func TestRequiredTakesPrecedenceOverValidator(t *testing.T) {
	calls := 0
	f := mustNew(t, Config[kbData]{
		"name": Field[kbData, string]{
			Required: true,
			Default:  "x",
			Ref:      nameRef,
			Validate: func(value string, _ kbData) string {
				calls++
				return "always rejected"
			},
		},
	})

	if got := f.Error("name"); got != "always rejected" {
		t.Errorf("Error(name) = %q, want validator message", got)
	}

	calls = 0
	if err := f.UpdateField("name", ""); err != nil {
		t.Fatalf("UpdateField() error = %v", err)
	}
	if got := f.Error("name"); got != RequiredMessage {
		t.Errorf("Error(name) = %q, want %q", got, RequiredMessage)
	}
	if calls != 0 {
		t.Errorf("validator called %d times for an empty required value", calls)
	}
}

func TestOptionalFieldRunsValidatorOnEmptyValue(t *testing.T) {
	f := mustNew(t, Config[kbData]{
		"url": Field[kbData, string]{
			Ref: urlRef,
			Validate: func(value string, _ kbData) string {
				if value == "" {
					return "empty"
				}
				return ""
			},
		},
	})

	if got := f.Error("url"); got != "empty" {
		t.Errorf("Error(url) = %q, want %q", got, "empty")
	}
}

func TestValidatorSeesSiblingValues(t *testing.T) {
	f := mustNew(t, Config[kbData]{
		"name": Field[kbData, string]{Ref: nameRef},
		"url": Field[kbData, string]{
			Ref: urlRef,
			Validate: func(value string, data kbData) string {
				if data.Name != "" && !strings.Contains(value, data.Name) {
					return "url must mention the name"
				}
				return ""
			},
		},
	})

	if f.HasErrors() {
		t.Fatalf("unexpected initial errors: %v", f.Errors())
	}

	// Updating the sibling re-evaluates the dependent field.
	if err := f.UpdateField("name", "faq"); err != nil {
		t.Fatal(err)
	}
	if got := f.Error("url"); got != "url must mention the name" {
		t.Errorf("Error(url) = %q after sibling update", got)
	}

	if err := f.UpdateField("url", "https://example.com/faq"); err != nil {
		t.Fatal(err)
	}
	if f.HasErrors() {
		t.Errorf("HasErrors() = true, errors = %v", f.Errors())
	}
}

func TestHasErrorsTracksErrorsAfterEveryUpdate(t *testing.T) {
	f := mustNew(t, Config[kbData]{
		"name": Field[kbData, string]{
			Required: true,
			Ref:      nameRef,
			Validate: func(value string, _ kbData) string {
				if strings.Contains(value, " ") {
					return "no spaces"
				}
				return ""
			},
		},
		"url": Field[kbData, string]{Ref: urlRef},
	})

	updates := []struct {
		field string
		value string
	}{
		{"name", "a b"},
		{"url", "x"},
		{"name", "ab"},
		{"name", ""},
		{"url", ""},
		{"name", "kb"},
	}

	for _, u := range updates {
		if err := f.UpdateField(u.field, u.value); err != nil {
			t.Fatalf("UpdateField(%s, %q) error = %v", u.field, u.value, err)
		}
		if got, want := f.HasErrors(), len(f.Errors()) > 0; got != want {
			t.Errorf("after %s=%q: HasErrors() = %v, Errors() = %v", u.field, u.value, got, f.Errors())
		}
	}
}

func TestUpdateFieldIsIdempotent(t *testing.T) {
	once := mustNew(t, requiredConfig())
	twice := mustNew(t, requiredConfig())

	_ = once.UpdateField("name", "KB1")
	_ = twice.UpdateField("name", "KB1")
	_ = twice.UpdateField("name", "KB1")

	if diff := cmp.Diff(once.Data(), twice.Data()); diff != "" {
		t.Errorf("Data() mismatch (-once +twice):\n%s", diff)
	}
	if diff := cmp.Diff(once.Errors(), twice.Errors()); diff != "" {
		t.Errorf("Errors() mismatch (-once +twice):\n%s", diff)
	}
}

func TestUpdateFieldRejectsUndeclaredField(t *testing.T) {
	f := mustNew(t, requiredConfig())

	err := f.UpdateField("locale", "en-us")
	if !IsInvalidFieldError(err) {
		t.Fatalf("UpdateField() error = %v, want invalid field error", err)
	}
	var formErr *Error
	if !errors.As(err, &formErr) || formErr.Field != "locale" {
		t.Errorf("error does not carry field name: %#v", err)
	}
	if len(f.Values()) != 2 {
		t.Errorf("field set changed: %v", f.Values())
	}
}

func TestUpdateFieldRejectsWrongType(t *testing.T) {
	f := mustNew(t, requiredConfig())

	if err := f.UpdateField("name", 42); !IsFieldTypeError(err) {
		t.Fatalf("UpdateField() error = %v, want field type error", err)
	}
	if got := f.Data().Name; got != "" {
		t.Errorf("Name = %q, want unchanged", got)
	}
}

func TestValueAndFields(t *testing.T) {
	f := mustNew(t, requiredConfig())
	_ = f.UpdateField("url", "https://a.b")

	v, err := f.Value("url")
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if v != "https://a.b" {
		t.Errorf("Value(url) = %v", v)
	}
	if _, err := f.Value("nope"); !IsInvalidFieldError(err) {
		t.Errorf("Value(nope) error = %v", err)
	}
	if diff := cmp.Diff([]string{"name", "url"}, f.Fields()); diff != "" {
		t.Errorf("Fields() mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorsReturnsCopy(t *testing.T) {
	f := mustNew(t, requiredConfig())

	errs := f.Errors()
	delete(errs, "name")

	if f.Error("name") != RequiredMessage {
		t.Error("mutating Errors() result changed the form")
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	f := mustNew(t, Config[kbData]{
		"name": Field[kbData, string]{Required: true, Default: "faq", Ref: nameRef},
	})

	_ = f.UpdateField("name", "")
	if !f.Dirty() || !f.HasErrors() {
		t.Fatal("expected dirty form with errors")
	}

	f.Reset()
	if f.Dirty() || f.HasErrors() || f.Data().Name != "faq" {
		t.Errorf("Reset() left data = %+v, errors = %v", f.Data(), f.Errors())
	}
}

func TestSubmitBlockedWhileInvalid(t *testing.T) {
	f := mustNew(t, requiredConfig())

	called := false
	err := f.Submit(func(kbData) error {
		called = true
		return nil
	})
	if !IsInvalidError(err) {
		t.Errorf("Submit() error = %v, want invalid form error", err)
	}
	if called {
		t.Error("submit callback ran for an invalid form")
	}

	_ = f.UpdateField("name", "KB1")
	_ = f.UpdateField("url", "https://a.b/faq")

	var got kbData
	if err := f.Submit(func(d kbData) error {
		got = d
		return nil
	}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if diff := cmp.Diff(kbData{Name: "KB1", URL: "https://a.b/faq"}, got); diff != "" {
		t.Errorf("submitted data mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitPropagatesCallbackError(t *testing.T) {
	f := mustNew(t, Config[kbData]{"name": Field[kbData, string]{Ref: nameRef}})
	want := errors.New("disk full")

	if err := f.Submit(func(kbData) error { return want }); !errors.Is(err, want) {
		t.Errorf("Submit() error = %v, want %v", err, want)
	}
}

func TestValidatorPanicPropagates(t *testing.T) {
	f := mustNew(t, Config[kbData]{"name": Field[kbData, string]{Ref: nameRef}})
	f.fields["name"] = Field[kbData, string]{
		Ref:      nameRef,
		Validate: func(string, kbData) string { panic("broken validator") },
	}

	defer func() {
		if recover() == nil {
			t.Error("expected validator panic to propagate")
		}
	}()
	_ = f.UpdateField("name", "x")
}

func TestNonStringFields(t *testing.T) {
	type settings struct {
		Retries int
		Enabled bool
	}
	f := mustNew(t, Config[settings]{
		"retries": Field[settings, int]{
			Required: true,
			Default:  3,
			Ref:      func(s *settings) *int { return &s.Retries },
			Validate: func(v int, _ settings) string {
				if v > 10 {
					return "too many"
				}
				return ""
			},
		},
		"enabled": Field[settings, bool]{
			Ref: func(s *settings) *bool { return &s.Enabled },
		},
	})

	if f.HasErrors() {
		t.Fatalf("unexpected errors: %v", f.Errors())
	}
	_ = f.UpdateField("retries", 0)
	if f.Error("retries") != RequiredMessage {
		t.Errorf("Error(retries) = %q, want required", f.Error("retries"))
	}
	_ = f.UpdateField("retries", 11)
	if f.Error("retries") != "too many" {
		t.Errorf("Error(retries) = %q, want validator message", f.Error("retries"))
	}
	if err := f.UpdateField("enabled", true); err != nil {
		t.Fatal(err)
	}
	if !f.Data().Enabled {
		t.Error("Enabled not set")
	}
}
