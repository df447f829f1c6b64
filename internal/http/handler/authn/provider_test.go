package authn

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bornholm/signin/internal/store"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/faux"
	"github.com/pkg/errors"
)

const testProviderState = "abc"

// newProviderTestHandler returns a handler sharing its session store with
// gothic and the faux provider registered.
func newProviderTestHandler(t *testing.T, journal Journal) *Handler {
	t.Helper()

	sessionStore := sessions.NewCookieStore([]byte(testSessionKey))

	previousStore := gothic.Store
	gothic.Store = sessionStore

	goth.UseProviders(&faux.Provider{})

	t.Cleanup(func() {
		gothic.Store = previousStore
		goth.ClearProviders()
	})

	handler, err := NewHandler(sessionStore, &fakeAuthenticator{},
		WithSocialSignIn(true),
		WithCallbackURL("http://localhost:3000"),
		WithJournal(journal),
	)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return handler
}

// beginProviderAuth stores the provider session as if the user had been
// sent to the provider authorization page.
func beginProviderAuth(t *testing.T, email string) []*http.Cookie {
	t.Helper()

	data := fmt.Sprintf(`{"ID":"1234","Name":"Homer Simpson","Email":%q,"AuthURL":"http://example.com/auth?state=%s"}`, email, testProviderState)

	res := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if err := gothic.StoreInSession("faux", data, req, res); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return res.Result().Cookies()
}

func TestProviderCallback(t *testing.T) {
	journal := &memoryJournal{}
	handler := newProviderTestHandler(t, journal)

	cookies := beginProviderAuth(t, "homer@example.com")

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, newRequest(http.MethodGet, "/providers/faux/callback?state="+testProviderState, nil, cookies...))

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Fatalf("res.Code: expected '%d', got '%d'", e, g)
	}

	if e, g := "http://localhost:3000", res.Header().Get("Location"); e != g {
		t.Errorf("Location: expected '%s', got '%s'", e, g)
	}

	if outcomes := journal.outcomes(); len(outcomes) != 1 || outcomes[0] != store.OutcomeSuccess {
		t.Errorf("outcomes: expected '[%s]', got '%v'", store.OutcomeSuccess, outcomes)
	}

	sessionCookie := findCookie(res.Result().Cookies(), "signin_auth")
	if sessionCookie == nil {
		t.Fatalf("expected a session cookie")
	}

	var user *User

	protected := handler.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user = ContextUser(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	res = httptest.NewRecorder()
	protected.ServeHTTP(res, newRequest(http.MethodGet, "/", nil, sessionCookie))

	if e, g := http.StatusNoContent, res.Code; e != g {
		t.Fatalf("res.Code: expected '%d', got '%d'", e, g)
	}

	if e, g := "faux", user.Provider; e != g {
		t.Errorf("user.Provider: expected '%s', got '%s'", e, g)
	}

	if e, g := "homer@example.com", user.Email; e != g {
		t.Errorf("user.Email: expected '%s', got '%s'", e, g)
	}

	if e, g := "1234", user.Subject; e != g {
		t.Errorf("user.Subject: expected '%s', got '%s'", e, g)
	}

	if e, g := "Homer Simpson", user.DisplayName; e != g {
		t.Errorf("user.DisplayName: expected '%s', got '%s'", e, g)
	}

	// Provider users are logged out from their provider too
	res = httptest.NewRecorder()
	handler.ServeHTTP(res, newRequest(http.MethodGet, "/logout", nil, sessionCookie))

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Errorf("res.Code: expected '%d', got '%d'", e, g)
	}

	if e, g := testBaseURL+"/auth/providers/faux/logout", res.Header().Get("Location"); e != g {
		t.Errorf("Location: expected '%s', got '%s'", e, g)
	}
}

func TestProviderCallbackWithoutEmail(t *testing.T) {
	journal := &memoryJournal{}
	handler := newProviderTestHandler(t, journal)

	cookies := beginProviderAuth(t, "")

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, newRequest(http.MethodGet, "/providers/faux/callback?state="+testProviderState, nil, cookies...))

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Fatalf("res.Code: expected '%d', got '%d'", e, g)
	}

	if e, g := testBaseURL+"/auth/login", res.Header().Get("Location"); e != g {
		t.Errorf("Location: expected '%s', got '%s'", e, g)
	}

	if outcomes := journal.outcomes(); len(outcomes) != 1 || outcomes[0] != store.OutcomeError {
		t.Errorf("outcomes: expected '[%s]', got '%v'", store.OutcomeError, outcomes)
	}

	sessionCookie := findCookie(res.Result().Cookies(), "signin_auth")
	if sessionCookie == nil {
		t.Fatalf("expected a session cookie carrying the flash message")
	}

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, newRequest(http.MethodGet, "/login", nil, sessionCookie))

	if e, g := http.StatusOK, res.Code; e != g {
		t.Errorf("res.Code: expected '%d', got '%d'", e, g)
	}

	if body := res.Body.String(); !strings.Contains(body, "The sign-in with this provider failed") {
		t.Errorf("expected body to contain provider failure warning, got '%s'", body)
	}
}

func TestGetUserDisplayName(t *testing.T) {
	type testCase struct {
		Name     string
		User     goth.User
		Expected string
	}

	testCases := []testCase{
		{
			Name: "preferred username",
			User: goth.User{
				RawData:  map[string]any{"preferred_username": "jdoe"},
				NickName: "jane",
			},
			Expected: "jdoe",
		},
		{
			Name:     "nickname",
			User:     goth.User{NickName: "jane", Name: "Jane Doe"},
			Expected: "jane",
		},
		{
			Name:     "first and last names",
			User:     goth.User{FirstName: "Jane", LastName: "Doe"},
			Expected: "Jane Doe",
		},
		{
			Name:     "user id",
			User:     goth.User{UserID: "42"},
			Expected: "42",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if e, g := tc.Expected, getUserDisplayName(tc.User); e != g {
				t.Errorf("getUserDisplayName(): expected '%s', got '%s'", e, g)
			}
		})
	}
}
