package config

import (
	"log/slog"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if conf.IsDevelopment() {
		t.Errorf("expected default environment not to be development")
	}

	if e, g := "https://events-all.vercel.app", conf.CallbackURL(); e != g {
		t.Errorf("conf.CallbackURL(): expected '%s', got '%s'", e, g)
	}

	if e, g := "/register", conf.HTTP.Authn.SignUpURL; e != g {
		t.Errorf("conf.HTTP.Authn.SignUpURL: expected '%s', got '%s'", e, g)
	}

	if e, g := slog.LevelInfo, conf.Logger.Level; e != g {
		t.Errorf("conf.Logger.Level: expected '%v', got '%v'", e, g)
	}
}

func TestParseDevelopment(t *testing.T) {
	t.Setenv("SIGNIN_ENVIRONMENT", "development")
	t.Setenv("SIGNIN_HTTP_AUTHN_CALLBACK_URL_DEVELOPMENT", "http://localhost:4000")
	t.Setenv("SIGNIN_HTTP_SESSION_KEYS", "first,second")
	t.Setenv("SIGNIN_IDENTITY_ENDPOINT", "http://auth.local/api")

	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if !conf.IsDevelopment() {
		t.Errorf("expected environment to be development")
	}

	if e, g := "http://localhost:4000", conf.CallbackURL(); e != g {
		t.Errorf("conf.CallbackURL(): expected '%s', got '%s'", e, g)
	}

	if e, g := 2, len(conf.HTTP.Session.Keys); e != g {
		t.Errorf("len(conf.HTTP.Session.Keys): expected '%d', got '%d'", e, g)
	}

	if e, g := "http://auth.local/api", conf.Identity.Endpoint; e != g {
		t.Errorf("conf.Identity.Endpoint: expected '%s', got '%s'", e, g)
	}
}
