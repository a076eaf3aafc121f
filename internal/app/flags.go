package app

import (
	"flag"
	"fmt"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim    string
	Rounds int

	// Grid source: either a text file of rows, or a seeded random grid.
	Input  string
	Width  int
	Height int
	Seed   int64
	Fill   int

	Threshold int
	Workers   int

	// Watch prints the grid after every round, paced at TPS.
	Watch bool
	TPS   int

	// Optional artifacts.
	Chart string
	Video string
	Scale int
	FPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:       "overflow",
		Rounds:    16,
		Width:     40,
		Height:    24,
		Seed:      42,
		Fill:      6,
		Threshold: 4,
		Workers:   1,
		TPS:       12,
		Scale:     8,
		FPS:       12,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Rounds, "rounds", c.Rounds, "number of rounds to simulate")
	fs.StringVar(&c.Input, "input", c.Input, "grid file (rows of integers); empty means a random grid")
	fs.IntVar(&c.Width, "w", c.Width, "random grid width")
	fs.IntVar(&c.Height, "h", c.Height, "random grid height")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random grid")
	fs.IntVar(&c.Fill, "fill", c.Fill, "maximum random cell value")
	fs.IntVar(&c.Threshold, "threshold", c.Threshold, "inclusive overflow threshold")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines for the delta pass")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "print the grid after every round")
	fs.IntVar(&c.TPS, "tps", c.TPS, "rounds per second in watch mode")
	fs.StringVar(&c.Chart, "chart", c.Chart, "write a per-round series chart PNG to this path")
	fs.StringVar(&c.Video, "video", c.Video, "write an MJPEG animation AVI to this path")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell in the animation")
	fs.IntVar(&c.FPS, "fps", c.FPS, "animation frames per second")
}

// Validate rejects parameter combinations before any round runs.
func (c *Config) Validate() error {
	if c.Rounds < 0 {
		return fmt.Errorf("rounds must be >= 0, got %d", c.Rounds)
	}
	if c.Input == "" && (c.Width < 1 || c.Height < 1) {
		return fmt.Errorf("grid dimensions must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.Threshold < 1 {
		return fmt.Errorf("threshold must be >= 1, got %d", c.Threshold)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if c.Fill < 0 {
		return fmt.Errorf("fill must be >= 0, got %d", c.Fill)
	}
	return nil
}
