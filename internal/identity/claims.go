package identity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type TokenClaims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// ParseTokenClaims reads the claims of a session token issued by the
// identity service. The signature is NOT verified: the token is only
// inspected, never trusted.
func ParseTokenClaims(token string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, errors.WithStack(err)
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	tokenClaims := &TokenClaims{
		Subject: subject,
	}

	expiresAt, err := claims.GetExpirationTime()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if expiresAt != nil {
		tokenClaims.ExpiresAt = expiresAt.Time
	}

	if email, ok := claims["email"].(string); ok {
		tokenClaims.Email = email
	}

	return tokenClaims, nil
}
