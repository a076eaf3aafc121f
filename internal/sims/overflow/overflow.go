package overflow

import (
	"sync"

	"gridflow/internal/core"
	pkgcore "gridflow/pkg/core"
)

// Orthogonal neighborhood, evaluated up, left, right, down. The order has
// no effect on results: deltas are accumulated against the round snapshot
// and committed only after the full pass.
var directions = [4][2]int{
	{0, -1},
	{-1, 0},
	{1, 0},
	{0, 1},
}

// World runs the overflow-and-redistribute rule on an integer grid. Each
// round every cell at or above the threshold sends one unit to each
// orthogonal neighbor that exists, all cells judged against the same
// start-of-round snapshot.
type World struct {
	cfg   Config
	grid  *core.Grid
	delta []int
}

// New returns an overflow simulation with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an overflow world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	if cfg.Params.Threshold <= 0 {
		cfg.Params.Threshold = DefaultThreshold
	}
	grid := core.NewGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = grid.W, grid.H
	return &World{
		cfg:   cfg,
		grid:  grid,
		delta: make([]int, grid.W*grid.H),
	}
}

// FromGrid adopts an existing grid, keeping default rule parameters.
func FromGrid(g *core.Grid) *World {
	cfg := DefaultConfig()
	cfg.Width = g.W
	cfg.Height = g.H
	w := NewWithConfig(cfg)
	w.grid = g
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "overflow" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Grid exposes the live grid.
func (w *World) Grid() *core.Grid { return w.grid }

// SetGrid replaces the current grid. The delta buffer is resized to match.
func (w *World) SetGrid(g *core.Grid) {
	w.grid = g
	w.cfg.Width, w.cfg.Height = g.W, g.H
	if len(w.delta) != g.W*g.H {
		w.delta = make([]int, g.W*g.H)
	}
}

// Reset fills the grid with uniform random values in [0, MaxFill] so a
// fresh world has something to topple.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	rng := pkgcore.NewRNG(effective).Source()
	pkgcore.FillUniform(rng, w.grid.Cells(), w.cfg.Params.MaxFill)
}

// Step advances the simulation by one round: a full delta pass over the
// snapshot, then an atomic commit. No cell value written by the commit is
// ever read by the same round's delta pass.
func (w *World) Step() {
	if w.cfg.Workers > 1 {
		w.stepParallel(w.cfg.Workers)
		return
	}
	for i := range w.delta {
		w.delta[i] = 0
	}
	accumulate(w.grid, w.cfg.Params.Threshold, w.delta, 0, w.grid.H)
	cells := w.grid.Cells()
	for i, d := range w.delta {
		cells[i] += d
	}
}

// StepN advances the simulation by n rounds. n <= 0 is a no-op.
func (w *World) StepN(n int) {
	for i := 0; i < n; i++ {
		w.Step()
	}
}

// accumulate writes the signed per-cell changes for rows [y0, y1) of the
// snapshot into delta. Active cells send one unit per in-bounds neighbor
// and lose one unit per in-bounds neighbor; directions that leave the grid
// are skipped outright, so a corner cell gives up at most two units.
func accumulate(g *core.Grid, threshold int, delta []int, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) < threshold {
				continue
			}
			idx := g.Index(x, y)
			for _, d := range directions {
				nx, ny := x+d[0], y+d[1]
				if !g.InBounds(nx, ny) {
					continue
				}
				delta[g.Index(nx, ny)]++
				delta[idx]--
			}
		}
	}
}

// stepParallel runs the same round split across workers. Each worker scans
// its own band of rows into a private delta slab; slabs target the full
// grid because transfers cross band edges. Integer addition makes the
// merge order irrelevant.
func (w *World) stepParallel(workers int) {
	h := w.grid.H
	if workers > h {
		workers = h
	}
	slabs := make([][]int, workers)
	var wg sync.WaitGroup
	for k := 0; k < workers; k++ {
		y0 := k * h / workers
		y1 := (k + 1) * h / workers
		slab := make([]int, w.grid.W*h)
		slabs[k] = slab
		wg.Add(1)
		go func(y0, y1 int, slab []int) {
			defer wg.Done()
			accumulate(w.grid, w.cfg.Params.Threshold, slab, y0, y1)
		}(y0, y1, slab)
	}
	wg.Wait()

	for i := range w.delta {
		w.delta[i] = 0
	}
	for _, slab := range slabs {
		for i, d := range slab {
			w.delta[i] += d
		}
	}

	cells := w.grid.Cells()
	for k := 0; k < workers; k++ {
		lo := (k * h / workers) * w.grid.W
		hi := ((k + 1) * h / workers) * w.grid.W
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				cells[i] += w.delta[i]
			}
		}(lo, hi)
	}
	wg.Wait()
}

func init() {
	core.Register("overflow", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
