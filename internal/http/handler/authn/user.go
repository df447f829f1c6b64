package authn

import "time"

const credentialsProvider = "credentials"

// User is the identity kept in the session cookie once the external
// service or a provider vouched for it.
type User struct {
	Email       string
	Provider    string
	Subject     string
	DisplayName string
	AccessToken string
	ExpiresAt   time.Time
}

func (u *User) IsCredentials() bool {
	return u.Provider == credentialsProvider
}
