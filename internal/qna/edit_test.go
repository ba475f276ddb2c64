package qna

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/muurk/kbforms/internal/form"
)

func editFixtures() ([]File, File) {
	current := File{ID: "faq.source.en-us", Content: "> !# @url = https://a.b/faq\n"}
	files := []File{
		current,
		{ID: "billing.source.en-us"},
		{ID: "support.source"},
	}
	return files, current
}

func TestEditFromURLFormDefaults(t *testing.T) {
	files, current := editFixtures()

	f, err := NewEditFromURLForm(files, current)
	if err != nil {
		t.Fatalf("NewEditFromURLForm() error = %v", err)
	}

	want := EditFromURLData{PreName: "faq", Name: "faq", URL: "https://a.b/faq"}
	if diff := cmp.Diff(want, f.Data()); diff != "" {
		t.Errorf("Data() mismatch (-want +got):\n%s", diff)
	}
	if f.HasErrors() {
		t.Errorf("unchanged name reported errors: %v", f.Errors())
	}
}

func TestEditFromURLFormNameUniqueness(t *testing.T) {
	files, current := editFixtures()
	f, err := NewEditFromURLForm(files, current)
	if err != nil {
		t.Fatal(err)
	}

	if err := f.UpdateField(FieldName, "billing"); err != nil {
		t.Fatal(err)
	}
	if got := f.Error(FieldName); got != MsgDuplicateName {
		t.Errorf("Error(name) = %q, want duplicate", got)
	}
	if !f.HasErrors() {
		t.Error("HasErrors() = false for duplicate name")
	}

	// The file being edited is excluded, so its own name is accepted.
	if err := f.UpdateField(FieldName, "faq"); err != nil {
		t.Fatal(err)
	}
	if got := f.Error(FieldName); got != "" {
		t.Errorf("Error(name) = %q for the edited file's own name", got)
	}

	if err := f.UpdateField(FieldName, ""); err != nil {
		t.Fatal(err)
	}
	if got := f.Error(FieldName); got != "Required" {
		t.Errorf("Error(name) = %q for empty name", got)
	}
}

func TestEditFromURLFormMissingURL(t *testing.T) {
	files := []File{{ID: "manual.source"}}

	f, err := NewEditFromURLForm(files, files[0])
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.Errors()[FieldURL]; !ok {
		t.Errorf("expected url error for a file without a url option, got %v", f.Errors())
	}
}

func TestEditFromURLFormMultipleLocales(t *testing.T) {
	current := File{ID: "faq.source.en-us", Content: "> !# @url = https://a.b/faq\n"}
	files := []File{
		current,
		{ID: "faq.source.fr-fr", Content: "> !# @url = https://a.b/faq\n"},
		{ID: "billing.source.en-us"},
	}

	f, err := NewEditFromURLForm(files, current)
	if err != nil {
		t.Fatal(err)
	}
	if f.HasErrors() {
		t.Errorf("unchanged name of a multi-locale knowledge base reported errors: %v", f.Errors())
	}

	if err := f.UpdateField(FieldName, "billing"); err != nil {
		t.Fatal(err)
	}
	if got := f.Error(FieldName); got != MsgDuplicateName {
		t.Errorf("Error(name) = %q, want duplicate", got)
	}
}

func TestNewEditForm(t *testing.T) {
	imported := File{ID: "faq.source", Content: "> !# @url = https://a.b/faq\n"}
	scratch := File{ID: "scratch.source", Content: "# ? hello\n"}
	files := []File{imported, scratch}

	tests := []struct {
		name        string
		current     File
		wantURL     string
		urlRequired bool
	}{
		{"imported from url", imported, "https://a.b/faq", true},
		{"authored locally", scratch, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewEditForm(files, tt.current)
			if err != nil {
				t.Fatalf("NewEditForm() error = %v", err)
			}
			if f.HasErrors() {
				t.Errorf("defaults reported errors: %v", f.Errors())
			}
			if got := f.Data().URL; got != tt.wantURL {
				t.Errorf("Data().URL = %q, want %q", got, tt.wantURL)
			}

			if err := f.UpdateField(FieldName, "renamed"); err != nil {
				t.Fatal(err)
			}
			if f.HasErrors() {
				t.Errorf("valid rename reported errors: %v", f.Errors())
			}

			if err := f.UpdateField(FieldURL, ""); err != nil {
				t.Fatal(err)
			}
			if got := f.Error(FieldURL) == form.RequiredMessage; got != tt.urlRequired {
				t.Errorf("url required = %v, want %v", got, tt.urlRequired)
			}

			if err := f.UpdateField(FieldURL, "ftp://a.b"); err != nil {
				t.Fatal(err)
			}
			if got := f.Error(FieldURL); got != MsgInvalidURL {
				t.Errorf("Error(url) = %q, want %q", got, MsgInvalidURL)
			}
		})
	}
}
