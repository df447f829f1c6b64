package config

import "time"

type Metrics struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
	// JournalWindow is the period the journaled outcomes are counted over
	JournalWindow time.Duration `env:"JOURNAL_WINDOW" envDefault:"24h"`
}
