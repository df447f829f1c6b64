package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/invopop/ctxi18n/i18n"
)

func TestMiddleware(t *testing.T) {
	type testCase struct {
		AcceptLanguage string
		Expected       string
	}

	testCases := []testCase{
		{AcceptLanguage: "", Expected: "Login"},
		{AcceptLanguage: "fr-FR,fr;q=0.9", Expected: "Connexion"},
		{AcceptLanguage: "en-US,en;q=0.8", Expected: "Login"},
	}

	for _, tc := range testCases {
		t.Run(tc.AcceptLanguage, func(t *testing.T) {
			var title string

			handler := Middleware("en")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				title = i18n.T(r.Context(), "authn.login.title")
			}))

			req := httptest.NewRequest(http.MethodGet, "/login", nil)
			if tc.AcceptLanguage != "" {
				req.Header.Set("Accept-Language", tc.AcceptLanguage)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			if e, g := tc.Expected, title; e != g {
				t.Errorf("title: expected '%s', got '%s'", e, g)
			}
		})
	}
}
