package qna

import "github.com/muurk/kbforms/internal/form"

// Field names of the edit form.
const (
	FieldPreName = "preName"
	FieldName    = "name"
	FieldURL     = "url"
)

// EditFromURLData is the record edited when renaming a knowledge base.
// PreName carries the name the dialog was opened with. URL is empty for
// knowledge bases that were not imported from a FAQ website.
type EditFromURLData struct {
	PreName string
	Name    string
	URL     string
}

// NewEditFromURLConfig builds the edit form configuration for a knowledge
// base imported from a FAQ website; its url is required. The name must be
// unique among other knowledge bases, so keeping the unchanged name is valid
// even when the knowledge base has several locale files.
func NewEditFromURLConfig(files []File, current File) form.Config[EditFromURLData] {
	config := NewEditNameConfig(files, current)
	config[FieldURL] = form.Field[EditFromURLData, string]{
		Required: true,
		Default:  current.URL(),
		Validate: func(value string, _ EditFromURLData) string { return ValidateURL(value) },
		Ref:      func(d *EditFromURLData) *string { return &d.URL },
	}
	return config
}

// NewEditNameConfig builds the edit form configuration for a knowledge base
// authored locally. Only the name is required; url is carried along and
// checked only when present.
func NewEditNameConfig(files []File, current File) form.Config[EditFromURLData] {
	validateName := ValidateName(Others(files, current.Name()))

	return form.Config[EditFromURLData]{
		FieldPreName: form.Field[EditFromURLData, string]{
			Default: current.Name(),
			Ref:     func(d *EditFromURLData) *string { return &d.PreName },
		},
		FieldName: form.Field[EditFromURLData, string]{
			Required: true,
			Default:  current.Name(),
			Validate: func(value string, _ EditFromURLData) string { return validateName(value) },
			Ref:      func(d *EditFromURLData) *string { return &d.Name },
		},
		FieldURL: form.Field[EditFromURLData, string]{
			Default:  current.URL(),
			Validate: func(value string, _ EditFromURLData) string { return ValidateURL(value) },
			Ref:      func(d *EditFromURLData) *string { return &d.URL },
		},
	}
}

// NewEditFromURLForm creates the edit form for an imported knowledge base.
func NewEditFromURLForm(files []File, current File) (*form.Form[EditFromURLData], error) {
	return form.New(NewEditFromURLConfig(files, current), form.WithName("edit-kb-from-url"))
}

// NewEditForm creates the edit form suited to current: the url-required form
// for imported knowledge bases and the name-only form otherwise.
func NewEditForm(files []File, current File) (*form.Form[EditFromURLData], error) {
	if current.FromURL() {
		return NewEditFromURLForm(files, current)
	}
	return form.New(NewEditNameConfig(files, current), form.WithName("edit-kb"))
}
