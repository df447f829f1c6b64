package config

import "time"

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
}

type Database struct {
	DSN         string        `env:"DSN,expand" envDefault:"data/signin.sqlite"`
	BusyTimeout time.Duration `env:"BUSY_TIMEOUT" envDefault:"30s"`
	// Retention bounds the age of journaled sign-in events, zero keeps them
	// forever
	Retention time.Duration `env:"RETENTION" envDefault:"720h"`
}
