package form

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/invopop/ctxi18n/i18n"
	"github.com/pkg/errors"
)

// ValidationRule represents a validation rule that can be applied at runtime
type ValidationRule interface {
	Validate(ctx context.Context, form *Form, field Field) error
}

// RequiredRule validates that a field is not empty
type RequiredRule struct{}

var _ ValidationRule = RequiredRule{}

func (r RequiredRule) Validate(ctx context.Context, f *Form, field Field) error {
	value, exists := f.Values[field.Name]
	if !exists || strings.TrimSpace(value) == "" {
		return errors.New(i18n.T(ctx, "form.errors.required"))
	}

	return nil
}

// EmailRule validates that a field holds a single bare email address
type EmailRule struct{}

var _ ValidationRule = EmailRule{}

func (r EmailRule) Validate(ctx context.Context, f *Form, field Field) error {
	value := strings.TrimSpace(f.Values[field.Name])
	if value == "" {
		return nil
	}

	address, err := mail.ParseAddress(value)
	if err != nil || address.Address != value || !strings.Contains(value[strings.LastIndex(value, "@"):], ".") {
		return errors.New(i18n.T(ctx, "form.errors.email"))
	}

	return nil
}

// MinLengthRule validates minimum string length
type MinLengthRule struct {
	MinLength int
}

var _ ValidationRule = MinLengthRule{}

func (r MinLengthRule) Validate(ctx context.Context, f *Form, field Field) error {
	if utf8.RuneCountInString(f.Values[field.Name]) < r.MinLength {
		return errors.New(i18n.T(ctx, "form.errors.min_length", i18n.M{"count": r.MinLength}))
	}
	return nil
}

// MaxLengthRule validates maximum string length
type MaxLengthRule struct {
	MaxLength int
}

var _ ValidationRule = MaxLengthRule{}

func (r MaxLengthRule) Validate(ctx context.Context, f *Form, field Field) error {
	if utf8.RuneCountInString(f.Values[field.Name]) > r.MaxLength {
		return errors.New(i18n.T(ctx, "form.errors.max_length", i18n.M{"count": r.MaxLength}))
	}
	return nil
}
