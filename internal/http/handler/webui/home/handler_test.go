package home

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bornholm/signin/internal/http/handler/authn"
	httpCtx "github.com/bornholm/signin/internal/http/context"
	"github.com/bornholm/signin/internal/http/i18n"
	"github.com/bornholm/signin/internal/store"
	"github.com/pkg/errors"
)

type activityFunc func(ctx context.Context, email string, limit int) ([]*store.SignInEvent, error)

func (fn activityFunc) ListByEmail(ctx context.Context, email string, limit int) ([]*store.SignInEvent, error) {
	return fn(ctx, email, limit)
}

func newRequest(user *authn.User) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	ctx := httpCtx.SetBaseURL(req.Context(), "http://localhost:3002")
	ctx = httpCtx.SetCurrentURL(ctx, req.URL)
	ctx = i18n.WithLocale(ctx, "en")
	ctx = authn.WithContextUser(ctx, user)

	return req.WithContext(ctx)
}

func TestIndexPage(t *testing.T) {
	user := &authn.User{
		Email:       "jane@example.com",
		Provider:    "credentials",
		DisplayName: "Jane",
	}

	var (
		gotEmail string
		gotLimit int
	)

	activity := activityFunc(func(ctx context.Context, email string, limit int) ([]*store.SignInEvent, error) {
		gotEmail = email
		gotLimit = limit

		return []*store.SignInEvent{
			store.NewSignInEvent(store.MethodCredentials, email, store.OutcomeSuccess, http.StatusSeeOther, "127.0.0.1"),
			store.NewSignInEvent(store.MethodCredentials, email, store.OutcomeUnauthorized, http.StatusUnauthorized, "127.0.0.1"),
		}, nil
	})

	handler := NewHandler(activity, 5)

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, newRequest(user))

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%d', got '%d'", e, g)
	}

	if e, g := user.Email, gotEmail; e != g {
		t.Errorf("email: expected '%s', got '%s'", e, g)
	}

	if e, g := 5, gotLimit; e != g {
		t.Errorf("limit: expected '%d', got '%d'", e, g)
	}

	body := res.Body.String()

	for _, expected := range []string{"Signed in as Jane", "Successful sign-in", "Refused: unauthorized", "http://localhost:3002/auth/logout"} {
		if !strings.Contains(body, expected) {
			t.Errorf("expected body to contain '%s', got '%s'", expected, body)
		}
	}
}

func TestIndexPageWithoutActivity(t *testing.T) {
	activity := activityFunc(func(ctx context.Context, email string, limit int) ([]*store.SignInEvent, error) {
		return nil, nil
	})

	handler := NewHandler(activity, 5)

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, newRequest(&authn.User{Email: "jane@example.com", DisplayName: "Jane"}))

	if body := res.Body.String(); !strings.Contains(body, "No recorded activity.") {
		t.Errorf("expected body to contain empty activity message, got '%s'", body)
	}
}

func TestIndexPageActivityFailure(t *testing.T) {
	activity := activityFunc(func(ctx context.Context, email string, limit int) ([]*store.SignInEvent, error) {
		return nil, errors.New("database is locked")
	})

	handler := NewHandler(activity, 5)

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, newRequest(&authn.User{Email: "jane@example.com"}))

	if e, g := http.StatusInternalServerError, res.Code; e != g {
		t.Errorf("res.Code: expected '%d', got '%d'", e, g)
	}
}
