package app

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gridflow/internal/core"
	"gridflow/internal/render"
)

// Run executes one simulation per the config and writes the final grid to
// out. The sim is resolved through the registry, so main only has to blank
// import the sims it wants available.
func Run(cfg *Config, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return fmt.Errorf("unknown sim %q", cfg.Sim)
	}

	var input *core.Grid
	if cfg.Input != "" {
		g, err := LoadGrid(cfg.Input)
		if err != nil {
			return err
		}
		input = g
		cfg.Width, cfg.Height = g.W, g.H
	}

	sim := factory(map[string]string{
		"w":         strconv.Itoa(cfg.Width),
		"h":         strconv.Itoa(cfg.Height),
		"seed":      strconv.FormatInt(cfg.Seed, 10),
		"workers":   strconv.Itoa(cfg.Workers),
		"threshold": strconv.Itoa(cfg.Threshold),
		"max_fill":  strconv.Itoa(cfg.Fill),
	})
	if input != nil {
		copy(sim.Grid().Cells(), input.Cells())
	} else {
		sim.Reset(cfg.Seed)
	}

	var series *render.Series
	if cfg.Chart != "" {
		series = &render.Series{}
		series.Observe(0, sim.Grid(), cfg.Threshold)
	}
	var anim *render.Animation
	if cfg.Video != "" {
		a, err := render.NewAnimation(cfg.Video, sim.Size(), cfg.Scale, cfg.FPS)
		if err != nil {
			return err
		}
		anim = a
		if err := anim.AddFrame(sim.Grid()); err != nil {
			return err
		}
	}
	var pacer *core.FixedStep
	if cfg.Watch {
		pacer = core.NewFixedStep(cfg.TPS)
	}

	for round := 1; round <= cfg.Rounds; round++ {
		if pacer != nil {
			pacer.Wait()
		}
		sim.Step()
		if cfg.Watch {
			if _, err := fmt.Fprintf(out, "round %d\n", round); err != nil {
				return err
			}
			if err := FormatGrid(out, sim.Grid()); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if series != nil {
			series.Observe(round, sim.Grid(), cfg.Threshold)
		}
		if anim != nil {
			if err := anim.AddFrame(sim.Grid()); err != nil {
				return err
			}
		}
	}

	if anim != nil {
		if err := anim.Close(); err != nil {
			return err
		}
	}
	if series != nil {
		f, err := os.Create(cfg.Chart)
		if err != nil {
			return err
		}
		if err := series.RenderPNG(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	if !cfg.Watch {
		return FormatGrid(out, sim.Grid())
	}
	return nil
}
