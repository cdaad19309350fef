package party

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is wrapped by every Config validation failure.
	ErrInvalidConfig = errors.New("invalid party configuration")

	// ErrPresentsLeft reports presents still in the chain after all servants
	// finished.
	ErrPresentsLeft = errors.New("presents left in the chain")

	// ErrCountMismatch reports that the number of successful adds or removes
	// differs from the number of presents.
	ErrCountMismatch = errors.New("present counts do not match")
)

// Config describes one simulation run.
type Config struct {
	// Servants is the number of concurrent workers.
	Servants int
	// Presents is the number of distinct present IDs, 0..Presents-1.
	Presents int
	// SpotCheckPercent is the chance, per servant step, that the Minotaur asks
	// whether a random present is in the chain.
	SpotCheckPercent int
	// Verbose logs every spot check at info level instead of debug.
	Verbose bool
	// Seed drives the shuffle and spot checks. Zero picks a random seed.
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		Servants:         4,
		Presents:         500_000,
		SpotCheckPercent: 1,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Servants < 1:
		return fmt.Errorf("%w: servants must be at least 1, got %d", ErrInvalidConfig, c.Servants)
	case c.Presents < 0:
		return fmt.Errorf("%w: presents must not be negative, got %d", ErrInvalidConfig, c.Presents)
	case c.SpotCheckPercent < 0 || c.SpotCheckPercent > 100:
		return fmt.Errorf("%w: spot check percent must be within [0, 100], got %d", ErrInvalidConfig, c.SpotCheckPercent)
	}
	return nil
}
