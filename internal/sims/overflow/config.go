package overflow

import "strconv"

// DefaultThreshold is the cell value at which overflow begins. The
// comparison is inclusive: a cell holding exactly this value is active.
const DefaultThreshold = 4

// Params holds the tunable values of the overflow rule.
type Params struct {
	// Threshold is the inclusive activation value.
	Threshold int
	// MaxFill bounds the uniform random values used by Reset.
	MaxFill int
}

// Config controls the overflow simulation dimensions and execution.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Workers splits the per-round delta pass across goroutines when > 1.
	// The result is identical to a serial pass under any split.
	Workers int

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   256,
		Height:  256,
		Seed:    1337,
		Workers: 1,
		Params: Params{
			Threshold: DefaultThreshold,
			MaxFill:   6,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
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
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.Threshold = parsed
		}
	}
	if v, ok := cfg["max_fill"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.MaxFill = parsed
		}
	}
	return c
}
