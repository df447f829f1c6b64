package authn

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bornholm/signin/internal/identity"
)

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}

	return nil
}

func signIn(t *testing.T, handler *Handler) []*http.Cookie {
	t.Helper()

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, newRequest(http.MethodPost, "/login", credentialsForm("jane@example.com", "secret")))

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Fatalf("res.Code: expected '%d', got '%d'", e, g)
	}

	return res.Result().Cookies()
}

func TestSessionCookieCappedByTokenExpiry(t *testing.T) {
	authenticator := &fakeAuthenticator{
		result: &identity.SignInResult{
			OK:        true,
			Status:    http.StatusOK,
			Token:     "token",
			User:      identity.User{ID: "42", Email: "jane@example.com"},
			ExpiresAt: time.Now().Add(60 * time.Second),
		},
	}

	handler := newTestHandler(t, authenticator)

	cookie := findCookie(signIn(t, handler), "signin_auth")
	if cookie == nil {
		t.Fatalf("expected a session cookie")
	}

	if cookie.MaxAge <= 0 || cookie.MaxAge > 60 {
		t.Errorf("cookie.MaxAge: expected between '1' and '60', got '%d'", cookie.MaxAge)
	}
}

func TestExpiredSessionUser(t *testing.T) {
	authenticator := &fakeAuthenticator{
		result: &identity.SignInResult{
			OK:        true,
			Status:    http.StatusOK,
			Token:     "token",
			User:      identity.User{ID: "42", Email: "jane@example.com"},
			ExpiresAt: time.Now().Add(-time.Minute),
		},
	}

	handler := newTestHandler(t, authenticator)

	cookies := signIn(t, handler)

	protected := handler.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("expected protected handler not to be called")
	}))

	res := httptest.NewRecorder()
	protected.ServeHTTP(res, newRequest(http.MethodGet, "/", nil, cookies...))

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Errorf("res.Code: expected '%d', got '%d'", e, g)
	}

	if e, g := testBaseURL+"/auth/login", res.Header().Get("Location"); e != g {
		t.Errorf("Location: expected '%s', got '%s'", e, g)
	}

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, newRequest(http.MethodGet, "/login", nil, cookies...))

	if e, g := http.StatusOK, res.Code; e != g {
		t.Errorf("res.Code: expected '%d', got '%d'", e, g)
	}
}
