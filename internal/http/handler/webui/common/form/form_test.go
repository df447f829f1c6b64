package form

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bornholm/signin/internal/http/i18n"
)

func newLoginFields() []Field {
	return []Field{
		{Name: "email", Type: "email", Required: true, Validation: []ValidationRule{EmailRule{}}},
		{Name: "password", Type: "password", Required: true, Sensitive: true},
	}
}

func TestFormHandle(t *testing.T) {
	formData := "email=jane%40example.com&password=s3cret&ignored=value"
	req := httptest.NewRequest("POST", "/login", strings.NewReader(formData))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form := New(newLoginFields())

	if err := form.Handle(req); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if form.Value("email") != "jane@example.com" {
		t.Errorf("Expected email 'jane@example.com', got '%s'", form.Value("email"))
	}

	if form.Value("password") != "s3cret" {
		t.Errorf("Expected password 's3cret', got '%s'", form.Value("password"))
	}

	if _, exists := form.Values["ignored"]; exists {
		t.Error("Expected undeclared fields to be ignored")
	}

	ctx := i18n.WithLocale(context.Background(), "en")

	if !form.IsValid(ctx) {
		t.Errorf("Expected form to be valid, got errors: %v", form.Errors)
	}

	fieldCtx, err := form.GetFieldContext("password")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if fieldCtx.Value != "" {
		t.Errorf("Expected sensitive value not to be echoed, got '%s'", fieldCtx.Value)
	}
}

func TestFormValidation(t *testing.T) {
	ctx := i18n.WithLocale(context.Background(), "en")

	type testCase struct {
		Name           string
		Values         map[string]string
		ExpectedErrors map[string]string
	}

	testCases := []testCase{
		{
			Name:   "missing fields",
			Values: map[string]string{},
			ExpectedErrors: map[string]string{
				"email":    "This field is required",
				"password": "This field is required",
			},
		},
		{
			Name:   "blank password",
			Values: map[string]string{"email": "jane@example.com", "password": "   "},
			ExpectedErrors: map[string]string{
				"password": "This field is required",
			},
		},
		{
			Name:   "malformed email",
			Values: map[string]string{"email": "Jane <jane@example.com>", "password": "secret"},
			ExpectedErrors: map[string]string{
				"email": "Please enter a valid email address",
			},
		},
		{
			Name:   "email without domain dot",
			Values: map[string]string{"email": "jane@localhost", "password": "secret"},
			ExpectedErrors: map[string]string{
				"email": "Please enter a valid email address",
			},
		},
		{
			Name:           "valid",
			Values:         map[string]string{"email": "jane@example.com", "password": "secret"},
			ExpectedErrors: map[string]string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			form := New(newLoginFields(), WithDefaultValues(tc.Values))

			valid := form.IsValid(ctx)

			if e, g := len(tc.ExpectedErrors) == 0, valid; e != g {
				t.Errorf("form.IsValid(): expected '%v', got '%v'", e, g)
			}

			if e, g := len(tc.ExpectedErrors), len(form.Errors); e != g {
				t.Errorf("len(form.Errors): expected '%d', got '%d' (%v)", e, g, form.Errors)
			}

			for name, expected := range tc.ExpectedErrors {
				if g := form.Errors[name]; expected != g {
					t.Errorf("form.Errors[%s]: expected '%s', got '%s'", name, expected, g)
				}
			}
		})
	}
}

func TestLengthRules(t *testing.T) {
	ctx := i18n.WithLocale(context.Background(), "en")

	fields := []Field{
		{Name: "code", Validation: []ValidationRule{MinLengthRule{MinLength: 3}, MaxLengthRule{MaxLength: 5}}},
	}

	form := New(fields, WithDefaultValues(map[string]string{"code": "ab"}))
	if form.ValidateField(ctx, "code") {
		t.Error("Expected short value to be rejected")
	}

	if e, g := "Minimum length is 3 characters", form.Errors["code"]; e != g {
		t.Errorf("form.Errors[code]: expected '%s', got '%s'", e, g)
	}

	form.Values["code"] = "abcdef"
	if form.ValidateField(ctx, "code") {
		t.Error("Expected long value to be rejected")
	}

	form.Values["code"] = "abcd"
	if !form.ValidateField(ctx, "code") {
		t.Errorf("Expected value to be accepted, got '%s'", form.Errors["code"])
	}

	if form.ValidateField(ctx, "unknown") {
		t.Error("Expected unknown field validation to fail")
	}
}
