package qphase

import (
	"math/rand"
	"time"
)

// Config carries the substitutable random-outcome source used for
// measurement sampling; seed it explicitly for deterministic runs.
type Config struct {
	Rand *rand.Rand
}

func NewConfig() *Config {
	return &Config{
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}
