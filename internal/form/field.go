package form

import "fmt"

// RequiredMessage is the error reported for a required field holding its zero value.
const RequiredMessage = "Required"

// Field configures a single form field holding a value of type V inside the
// record type T.
//
// Ref returns a pointer to the field within a record; it is used both to read
// and to write the value. Validate receives the candidate value and a snapshot
// of the whole record, so validators can compare against sibling fields.
// Validate returns an error message, or "" when the value is acceptable.
type Field[T any, V comparable] struct {
	Required bool
	Default  V
	Validate func(value V, data T) string
	Ref      func(data *T) *V
}

// Binding is the type-erased view of a Field used by Form. It is implemented
// only by Field.
type Binding[T any] interface {
	check(name string) error
	applyDefault(data *T)
	get(data *T) any
	set(name string, data *T, value any) error
	isDefault(data *T) bool
	validate(data *T) string
}

// Config maps field names to their configuration.
type Config[T any] map[string]Binding[T]

func (f Field[T, V]) check(name string) error {
	if f.Ref == nil {
		return newConfigError(name, "field has no Ref accessor")
	}
	return nil
}

func (f Field[T, V]) applyDefault(data *T) {
	*f.Ref(data) = f.Default
}

func (f Field[T, V]) get(data *T) any {
	return *f.Ref(data)
}

func (f Field[T, V]) set(name string, data *T, value any) error {
	v, ok := value.(V)
	if !ok {
		var zero V
		return newFieldTypeError(name, fmt.Sprintf("%T", zero), value)
	}
	*f.Ref(data) = v
	return nil
}

func (f Field[T, V]) isDefault(data *T) bool {
	return *f.Ref(data) == f.Default
}

// validate applies the required check first; the custom validator only runs
// for non-empty (or optional) values.
func (f Field[T, V]) validate(data *T) string {
	var zero V
	value := *f.Ref(data)
	if f.Required && value == zero {
		return RequiredMessage
	}
	if f.Validate != nil {
		return f.Validate(value, *data)
	}
	return ""
}
