package config

import "time"

// Identity configures the external session-management service credentials
// are forwarded to.
type Identity struct {
	Endpoint string        `env:"ENDPOINT,expand" envDefault:"http://localhost:3000/api/auth"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
