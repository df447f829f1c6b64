package identity

import (
	"context"
	"time"
)

// ErrorCredentialsSignin is reported when the service refuses the
// credentials without giving a reason.
const ErrorCredentialsSignin = "CredentialsSignin"

type Credentials struct {
	Email       string
	Password    string
	CallbackURL string
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SignInResult mirrors the answer of the session-management service.
// A refused sign-in is a result, not an error.
type SignInResult struct {
	OK        bool
	Status    int
	Error     string
	URL       string
	Token     string
	User      User
	ExpiresAt time.Time
}

type Authenticator interface {
	SignIn(ctx context.Context, credentials Credentials) (*SignInResult, error)
	SignOut(ctx context.Context, token string) error
}
