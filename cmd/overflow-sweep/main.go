package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"gridflow/internal/sims/overflow"
)

type paramSet struct {
	width     int
	height    int
	maxFill   int
	threshold int
}

func (p paramSet) String() string {
	return fmt.Sprintf("size=%dx%d fill=%d threshold=%d", p.width, p.height, p.maxFill, p.threshold)
}

type scenarioResult struct {
	params paramSet

	// Rounds until no cell was at or above the threshold, or the budget if
	// the grid never settled.
	roundsToRest int
	settled      bool

	activePeak int
	minCell    int
	maxCell    int
}

func main() {
	budget := flag.Int("budget", 2000, "maximum rounds to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1337, "seed used for deterministic grids")
	flag.Parse()

	sizeOptions := []struct{ w, h int }{
		{w: 16, h: 16},
		{w: 48, h: 32},
		{w: 96, h: 96},
	}
	fillOptions := []int{4, 6, 9, 14}
	thresholdOptions := []int{3, 4, 5}

	var sets []paramSet
	for _, size := range sizeOptions {
		for _, fill := range fillOptions {
			for _, threshold := range thresholdOptions {
				sets = append(sets, paramSet{
					width:     size.w,
					height:    size.h,
					maxFill:   fill,
					threshold: threshold,
				})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d round budget)\n", len(sets), *workers, *budget)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(params, *budget, *seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
		if !res.settled {
			fmt.Printf("Never settled within %d rounds: %s (peak %d active)\n",
				*budget, res.params, res.activePeak)
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].roundsToRest > all[j].roundsToRest })
	elapsed := time.Since(start)

	fmt.Printf("\nSlowest to settle (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 10; i++ {
		res := all[i]
		state := "settled"
		if !res.settled {
			state = "capped"
		}
		fmt.Printf("%2d) rounds=%d (%s) activePeak=%d cells=[%d,%d] %s\n",
			i+1, res.roundsToRest, state, res.activePeak, res.minCell, res.maxCell, res.params)
	}
}

func runScenario(params paramSet, budget int, seed int64) scenarioResult {
	cfg := overflow.DefaultConfig()
	cfg.Width = params.width
	cfg.Height = params.height
	cfg.Params.MaxFill = params.maxFill
	cfg.Params.Threshold = params.threshold

	world := overflow.NewWithConfig(cfg)
	world.Reset(seed)

	res := scenarioResult{params: params, roundsToRest: budget}
	for round := 0; round < budget; round++ {
		active := countActive(world, params.threshold)
		if active > res.activePeak {
			res.activePeak = active
		}
		if active == 0 {
			res.roundsToRest = round
			res.settled = true
			break
		}
		world.Step()
	}

	cells := world.Grid().Cells()
	res.minCell, res.maxCell = cells[0], cells[0]
	for _, v := range cells {
		if v < res.minCell {
			res.minCell = v
		}
		if v > res.maxCell {
			res.maxCell = v
		}
	}
	return res
}

func countActive(world *overflow.World, threshold int) int {
	active := 0
	for _, v := range world.Grid().Cells() {
		if v >= threshold {
			active++
		}
	}
	return active
}
