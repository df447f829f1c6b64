package authn

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var signInAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "signin_attempts_total",
	Help: "Total number of sign-in attempts by method and outcome.",
}, []string{"method", "outcome"})
