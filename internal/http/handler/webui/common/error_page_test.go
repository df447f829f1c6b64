package common

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"

	httpCtx "github.com/bornholm/signin/internal/http/context"
	"github.com/bornholm/signin/internal/http/i18n"
)

func TestHandleError(t *testing.T) {
	type testCase struct {
		Name            string
		Err             error
		ExpectedStatus  int
		ExpectedMessage string
	}

	testCases := []testCase{
		{
			Name:            "user facing error",
			Err:             errors.WithStack(NewError(errors.New("not found"), "This page does not exist", http.StatusNotFound)),
			ExpectedStatus:  http.StatusNotFound,
			ExpectedMessage: "This page does not exist",
		},
		{
			Name:            "unexpected error",
			Err:             errors.New("boom"),
			ExpectedStatus:  http.StatusInternalServerError,
			ExpectedMessage: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			ctx := httpCtx.SetBaseURL(req.Context(), "http://localhost:3002")
			ctx = httpCtx.SetCurrentURL(ctx, req.URL)
			ctx = i18n.WithLocale(ctx, "en")

			res := httptest.NewRecorder()

			HandleError(res, req.WithContext(ctx), tc.Err)

			if e, g := tc.ExpectedStatus, res.Code; e != g {
				t.Errorf("res.Code: expected '%d', got '%d'", e, g)
			}

			if body := res.Body.String(); !strings.Contains(body, tc.ExpectedMessage) {
				t.Errorf("expected body to contain '%s', got '%s'", tc.ExpectedMessage, body)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("csrf token invalid")

	err := NewError(cause, "Forbidden", http.StatusForbidden)

	if !errors.Is(err, cause) {
		t.Errorf("expected error to wrap its cause")
	}

	if e, g := cause.Error(), err.Error(); e != g {
		t.Errorf("err.Error(): expected '%s', got '%s'", e, g)
	}
}
