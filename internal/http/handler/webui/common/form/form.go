package form

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// Form represents a form with fields defined at runtime
type Form struct {
	Fields  []Field
	Values  map[string]string
	Errors  map[string]string
	options *FormOptions
}

// New creates a form from field definitions
func New(fields []Field, funcs ...FormOptionFunc) *Form {
	options := NewFormOptions(funcs...)

	form := &Form{
		Fields:  fields,
		Values:  make(map[string]string),
		Errors:  make(map[string]string),
		options: options,
	}

	for name, value := range options.DefaultValues {
		form.Values[name] = value
	}

	return form
}

// Handle reads the submitted values of the form fields
func (f *Form) Handle(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return errors.Wrap(err, "failed to parse form")
	}

	for _, field := range f.Fields {
		if _, exists := r.PostForm[field.Name]; !exists {
			continue
		}

		f.Values[field.Name] = r.PostFormValue(field.Name)
	}

	return nil
}

// IsValid validates all fields in the form
func (f *Form) IsValid(ctx context.Context) bool {
	f.Errors = make(map[string]string)

	for _, field := range f.Fields {
		if err := f.validate(ctx, field); err != nil {
			f.Errors[field.Name] = err.Error()
		}
	}

	return len(f.Errors) == 0
}

// ValidateField validates a specific field
func (f *Form) ValidateField(ctx context.Context, fieldName string) bool {
	delete(f.Errors, fieldName)

	field := f.field(fieldName)
	if field == nil {
		return false
	}

	if err := f.validate(ctx, *field); err != nil {
		f.Errors[fieldName] = err.Error()
		return false
	}

	return true
}

// Value returns the submitted value of a field
func (f *Form) Value(fieldName string) string {
	return f.Values[fieldName]
}

// SetError attaches an error to a field
func (f *Form) SetError(fieldName string, message string) {
	f.Errors[fieldName] = message
}

// GetFieldContext returns the rendering context for a specific field
func (f *Form) GetFieldContext(fieldName string) (FieldContext, error) {
	field := f.field(fieldName)
	if field == nil {
		return FieldContext{}, errors.Errorf("field %s not found", fieldName)
	}

	ctx := FieldContext{
		Name:        field.Name,
		Value:       f.Values[field.Name],
		Label:       field.Label,
		Type:        field.Type,
		Error:       f.Errors[field.Name],
		Required:    field.Required,
		Placeholder: field.Placeholder,
	}

	if field.Sensitive && !f.options.KeepSensitive {
		ctx.Value = ""
	}

	return ctx, nil
}

// GetFieldNames returns all field names
func (f *Form) GetFieldNames() []string {
	names := make([]string, len(f.Fields))
	for i, field := range f.Fields {
		names[i] = field.Name
	}
	return names
}

func (f *Form) field(fieldName string) *Field {
	for i := range f.Fields {
		if f.Fields[i].Name == fieldName {
			return &f.Fields[i]
		}
	}
	return nil
}

// validate stops at the first failing rule
func (f *Form) validate(ctx context.Context, field Field) error {
	if field.Required {
		if err := (RequiredRule{}).Validate(ctx, f, field); err != nil {
			return err
		}
	}

	for _, rule := range field.Validation {
		if err := rule.Validate(ctx, f, field); err != nil {
			return err
		}
	}

	return nil
}
