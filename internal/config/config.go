package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const EnvironmentDevelopment = "development"

type Config struct {
	Environment string   `env:"ENVIRONMENT,expand" envDefault:"production"`
	Logger      Logger   `envPrefix:"LOGGER_"`
	HTTP        HTTP     `envPrefix:"HTTP_"`
	Storage     Storage  `envPrefix:"STORAGE_"`
	I18n        I18n     `envPrefix:"I18N_"`
	Identity    Identity `envPrefix:"IDENTITY_"`
	Metrics     Metrics  `envPrefix:"METRICS_"`
}

// IsDevelopment reports whether the server runs in the development
// environment, the only one where social sign-in is open to everyone.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDevelopment
}

// CallbackURL returns the URL users land on after a provider sign-in.
func (c *Config) CallbackURL() string {
	if c.IsDevelopment() {
		return c.HTTP.Authn.CallbackURLs.Development
	}

	return c.HTTP.Authn.CallbackURLs.Production
}

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: "SIGNIN_",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
