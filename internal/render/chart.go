package render

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"gridflow/internal/core"
)

// Series accumulates per-round aggregates of a run for charting.
type Series struct {
	rounds  []float64
	totals  []float64
	actives []float64
}

// Observe records the grid state after the given round. Round 0 is the
// initial grid.
func (s *Series) Observe(round int, g *core.Grid, threshold int) {
	active := 0
	for _, v := range g.Cells() {
		if v >= threshold {
			active++
		}
	}
	s.rounds = append(s.rounds, float64(round))
	s.totals = append(s.totals, float64(g.Total()))
	s.actives = append(s.actives, float64(active))
}

// RenderPNG draws the recorded totals and active-cell counts as a PNG
// line chart.
func (s *Series) RenderPNG(w io.Writer) error {
	if len(s.rounds) < 2 {
		return fmt.Errorf("need at least two observed rounds, have %d", len(s.rounds))
	}
	graph := chart.Chart{
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name: "round",
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{Name: "cells"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "grid total",
				XValues: s.rounds,
				YValues: s.totals,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "active cells",
				XValues: s.rounds,
				YValues: s.actives,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 230, G: 50, B: 35, A: 255}, StrokeWidth: 2.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}
