package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMiddleware(t *testing.T) {
	limiter := NewLimiter(0.001, 2, time.Minute)

	handler := Middleware(limiter, nil, http.MethodPost)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(method, remoteAddr string) int {
		req := httptest.NewRequest(method, "/login", nil)
		req.RemoteAddr = remoteAddr
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		return res.Code
	}

	for i := 0; i < 2; i++ {
		if e, g := http.StatusNoContent, do(http.MethodPost, "192.0.2.1:1234"); e != g {
			t.Errorf("attempt #%d: expected '%d', got '%d'", i, e, g)
		}
	}

	if e, g := http.StatusTooManyRequests, do(http.MethodPost, "192.0.2.1:4321"); e != g {
		t.Errorf("exceeding attempt: expected '%d', got '%d'", e, g)
	}

	if e, g := http.StatusNoContent, do(http.MethodGet, "192.0.2.1:4321"); e != g {
		t.Errorf("unlimited method: expected '%d', got '%d'", e, g)
	}

	if e, g := http.StatusNoContent, do(http.MethodPost, "192.0.2.2:1234"); e != g {
		t.Errorf("other client: expected '%d', got '%d'", e, g)
	}
}

func TestLimiterCleanup(t *testing.T) {
	now := time.Now()

	limiter := NewLimiter(1, 1, time.Minute)
	limiter.now = func() time.Time { return now }

	limiter.Allow("a")
	limiter.Allow("b")

	now = now.Add(2 * time.Minute)
	limiter.Allow("b")

	limiter.Cleanup()

	if e, g := 1, limiter.size(); e != g {
		t.Errorf("limiter.size(): expected '%d', got '%d'", e, g)
	}
}
