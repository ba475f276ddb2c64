package form

import (
	"sort"

	"github.com/muurk/kbforms/internal/logging"
)

// Form holds the current values of a record T together with the validation
// errors derived from them. A Form is owned by the dialog or prompt that
// created it and is discarded when that surface closes.
type Form[T any] struct {
	name   string
	fields Config[T]
	order  []string
	data   T
	errors map[string]string
}

// Option customises a Form at construction.
type Option func(*options)

type options struct {
	name string
}

// WithName labels the form in log output.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// New creates a form from config, initialising every field from its Default
// and computing the errors for those defaults.
func New[T any](config Config[T], opts ...Option) (*Form[T], error) {
	o := options{name: "form"}
	for _, opt := range opts {
		opt(&o)
	}

	if len(config) == 0 {
		return nil, newConfigError("", "form has no fields")
	}

	order := make([]string, 0, len(config))
	for name, binding := range config {
		if binding == nil {
			return nil, newConfigError(name, "field has no configuration")
		}
		if err := binding.check(name); err != nil {
			return nil, err
		}
		order = append(order, name)
	}
	sort.Strings(order)

	f := &Form[T]{
		name:   o.name,
		fields: config,
		order:  order,
	}
	f.Reset()
	return f, nil
}

// Reset restores every field to its Default and recomputes errors.
func (f *Form[T]) Reset() {
	var data T
	for _, name := range f.order {
		f.fields[name].applyDefault(&data)
	}
	f.data = data
	f.revalidate()
}

// UpdateField sets a single field and recomputes the form's errors. It fails
// with an ErrTypeInvalidField error when name is not declared and with an
// ErrTypeFieldType error when value has the wrong type; the form is left
// unchanged in both cases.
func (f *Form[T]) UpdateField(name string, value any) error {
	binding, ok := f.fields[name]
	if !ok {
		return newInvalidFieldError(name)
	}
	if err := binding.set(name, &f.data, value); err != nil {
		return err
	}

	// Validators may read sibling values, so every entry is recomputed.
	f.revalidate()

	logging.LogFieldUpdate(f.name, name, f.errors[name], f.HasErrors())
	return nil
}

func (f *Form[T]) revalidate() {
	errs := make(map[string]string, len(f.order))
	for _, name := range f.order {
		if msg := f.fields[name].validate(&f.data); msg != "" {
			errs[name] = msg
		}
	}
	f.errors = errs
}

// Data returns a copy of the current record.
func (f *Form[T]) Data() T {
	return f.data
}

// Value returns the current value of a field.
func (f *Form[T]) Value(name string) (any, error) {
	binding, ok := f.fields[name]
	if !ok {
		return nil, newInvalidFieldError(name)
	}
	return binding.get(&f.data), nil
}

// Values returns the current values keyed by field name.
func (f *Form[T]) Values() map[string]any {
	values := make(map[string]any, len(f.order))
	for _, name := range f.order {
		values[name] = f.fields[name].get(&f.data)
	}
	return values
}

// Errors returns the non-empty error messages keyed by field name.
func (f *Form[T]) Errors() map[string]string {
	errs := make(map[string]string, len(f.errors))
	for name, msg := range f.errors {
		errs[name] = msg
	}
	return errs
}

// Error returns the error message for a field, or "" when it has none.
func (f *Form[T]) Error(name string) string {
	return f.errors[name]
}

// HasErrors reports whether any field currently has an error.
func (f *Form[T]) HasErrors() bool {
	return len(f.errors) > 0
}

// Dirty reports whether any field differs from its Default.
func (f *Form[T]) Dirty() bool {
	for _, name := range f.order {
		if !f.fields[name].isDefault(&f.data) {
			return true
		}
	}
	return false
}

// Fields returns the declared field names in sorted order.
func (f *Form[T]) Fields() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Submit passes the current record to fn. Submission is refused with an
// ErrTypeInvalid error while the form has errors.
func (f *Form[T]) Submit(fn func(data T) error) error {
	if f.HasErrors() {
		return newInvalidError(len(f.errors))
	}
	return fn(f.data)
}
