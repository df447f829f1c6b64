package store

import (
	"time"

	"gorm.io/gorm"
)

type SignInMethod string

const MethodCredentials SignInMethod = "credentials"

type SignInOutcome string

const (
	OutcomeSuccess      SignInOutcome = "success"
	OutcomeUnauthorized SignInOutcome = "unauthorized"
	OutcomeRejected     SignInOutcome = "rejected"
	OutcomeInvalid      SignInOutcome = "invalid"
	OutcomeRestricted   SignInOutcome = "restricted"
	OutcomeThrottled    SignInOutcome = "throttled"
	OutcomeError        SignInOutcome = "error"
)

// SignInEvent journals a sign-in attempt. Credentials are never stored.
type SignInEvent struct {
	gorm.Model

	Method     SignInMethod  `gorm:"index"`
	Email      string        `gorm:"index"`
	Outcome    SignInOutcome `gorm:"index"`
	Status     int
	RemoteAddr string
	OccurredAt time.Time `gorm:"index"`
}

func NewSignInEvent(method SignInMethod, email string, outcome SignInOutcome, status int, remoteAddr string) *SignInEvent {
	return &SignInEvent{
		Method:     method,
		Email:      email,
		Outcome:    outcome,
		Status:     status,
		RemoteAddr: remoteAddr,
		OccurredAt: time.Now().UTC(),
	}
}
