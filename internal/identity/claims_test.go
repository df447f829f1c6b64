package identity

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestParseTokenClaims(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user-1",
		"email": "john@example.com",
	}).SignedString([]byte("not-our-secret"))
	if err != nil {
		t.Fatalf("%+v", err)
	}

	claims, err := ParseTokenClaims(token)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := "user-1", claims.Subject; e != g {
		t.Errorf("claims.Subject: expected '%s', got '%s'", e, g)
	}

	if e, g := "john@example.com", claims.Email; e != g {
		t.Errorf("claims.Email: expected '%s', got '%s'", e, g)
	}

	if !claims.ExpiresAt.IsZero() {
		t.Errorf("claims.ExpiresAt: expected zero time, got '%v'", claims.ExpiresAt)
	}

	if _, err := ParseTokenClaims("opaque-token"); err == nil {
		t.Errorf("expected an error for a non jwt token, got nil")
	}
}
