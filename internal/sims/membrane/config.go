package membrane

import (
	"errors"
	"fmt"
	"strconv"
)

// Precondition violations reported by New before any state is touched.
var (
	ErrInvalidDimension = errors.New("membrane: lattice dimensions must be positive")
	ErrInvalidTypeCount = errors.New("membrane: lipid type count must be in [1, 255]")
	ErrAffinityTooSmall = errors.New("membrane: affinity matrix smaller than type count")
	ErrInvalidRounds    = errors.New("membrane: round count must be non-negative")
)

// Params holds the tunables of the diffusion process.
type Params struct {
	Types  int
	Rounds int

	// RawAffinity is the unsymmetrized interaction-score matrix. It must
	// cover at least Types×Types entries; when nil, DefaultRaw(Types) is
	// used instead.
	RawAffinity [][]float64
}

// Config controls the membrane simulation dimensions.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  64,
		Height: 64,
		Seed:   1337,
		Params: Params{
			Types:  3,
			Rounds: 100,
		},
	}
}

// Validate reports the first precondition violation in the config, if any.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, c.Width, c.Height)
	}
	if c.Params.Types < 1 || c.Params.Types > 255 {
		return fmt.Errorf("%w: got %d", ErrInvalidTypeCount, c.Params.Types)
	}
	if c.Params.Rounds < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRounds, c.Params.Rounds)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse or would violate a precondition are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["types"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed <= 255 {
			c.Params.Types = parsed
		}
	}
	if v, ok := cfg["rounds"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Rounds = parsed
		}
	}
	return c
}
