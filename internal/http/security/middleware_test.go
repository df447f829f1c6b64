package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddleware(t *testing.T) {
	handler := Middleware(Headers{
		FrameOptions:       "DENY",
		ContentTypeOptions: "nosniff",
	})(http.NotFoundHandler())

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/", nil))

	if e, g := "DENY", res.Header().Get("X-Frame-Options"); e != g {
		t.Errorf("X-Frame-Options: expected '%s', got '%s'", e, g)
	}

	if e, g := "nosniff", res.Header().Get("X-Content-Type-Options"); e != g {
		t.Errorf("X-Content-Type-Options: expected '%s', got '%s'", e, g)
	}

	if _, exists := res.Header()["Strict-Transport-Security"]; exists {
		t.Errorf("expected empty headers not to be set")
	}
}
