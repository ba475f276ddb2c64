// Package form implements a generic form-state container.
//
// A form is declared as a Config mapping field names to Field values. Each
// Field knows how to reach its value inside a record type, whether it is
// required, its default and an optional validator:
//
//	type Data struct{ Name, URL string }
//
//	f, err := form.New(form.Config[Data]{
//	    "name": form.Field[Data, string]{
//	        Required: true,
//	        Ref:      func(d *Data) *string { return &d.Name },
//	    },
//	    "url": form.Field[Data, string]{
//	        Required: true,
//	        Validate: validateURL,
//	        Ref:      func(d *Data) *string { return &d.URL },
//	    },
//	})
//
//	_ = f.UpdateField("name", "KB1")
//	if !f.HasErrors() {
//	    submit(f.Data())
//	}
//
// # Validation
//
// Errors are a pure function of the current values: after construction and
// after every UpdateField call each field is checked again. A required field
// holding its zero value reports RequiredMessage and its validator is not
// consulted. Validators receive the whole record so they can compare against
// sibling fields.
//
// Validation messages are data, not Go errors. Operations return errors only
// for programmer mistakes such as an undeclared field name, and panics raised
// by validators are not recovered.
//
// # Thread Safety
//
// A Form is not safe for concurrent use. It is created by a single dialog or
// prompt and used from that goroutine only.
package form
