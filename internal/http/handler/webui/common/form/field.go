package form

// Field represents a form field defined at runtime
type Field struct {
	Name        string
	Label       string
	Type        string
	Required    bool
	Validation  []ValidationRule
	Placeholder string
	// Sensitive fields are never echoed back unless explicitly kept
	Sensitive bool
}

// FieldContext contains all information needed to render a form field
type FieldContext struct {
	Name        string
	Value       string
	Label       string
	Type        string
	Error       string
	Required    bool
	Placeholder string
}

func (c FieldContext) Invalid() bool {
	return c.Error != ""
}
