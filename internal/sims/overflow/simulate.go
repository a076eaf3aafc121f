package overflow

import "gridflow/internal/core"

// Simulate applies rounds applications of the overflow rule to a copy of g
// and returns the result. The input grid is never modified; rounds <= 0
// yields an identical copy.
func Simulate(g *core.Grid, rounds int) *core.Grid {
	w := FromGrid(g.Clone())
	w.StepN(rounds)
	return w.Grid()
}

// SimulateRows is Simulate for callers holding plain row slices. It
// rejects jagged or empty input before any round runs.
func SimulateRows(rows [][]int, rounds int) ([][]int, error) {
	g, err := core.FromRows(rows)
	if err != nil {
		return nil, err
	}
	return Simulate(g, rounds).Rows(), nil
}
