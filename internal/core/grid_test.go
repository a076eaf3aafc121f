package core

import (
	"slices"
	"testing"
)

func TestFromRowsRoundTrip(t *testing.T) {
	rows := [][]int{
		{1, 2, 3},
		{4, 5, 6},
	}
	g, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if g.W != 3 || g.H != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", g.W, g.H)
	}
	got := g.Rows()
	for y := range rows {
		if !slices.Equal(got[y], rows[y]) {
			t.Fatalf("row %d = %v, want %v", y, got[y], rows[y])
		}
	}
}

func TestFromRowsRejectsMalformedInput(t *testing.T) {
	if _, err := FromRows(nil); err == nil {
		t.Fatal("expected error for no rows")
	}
	if _, err := FromRows([][]int{{}}); err == nil {
		t.Fatal("expected error for empty row")
	}
	if _, err := FromRows([][]int{{1, 2}, {3}}); err == nil {
		t.Fatal("expected error for jagged rows")
	}
}

func TestInBounds(t *testing.T) {
	g := NewGrid(4, 3)
	for _, tc := range []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{3, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{4, 0, false},
		{0, 3, false},
	} {
		if got := g.InBounds(tc.x, tc.y); got != tc.want {
			t.Fatalf("InBounds(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(1, 1, 9)
	c := g.Clone()
	c.Set(0, 0, 5)
	if g.At(0, 0) != 0 {
		t.Fatal("mutating the clone changed the original")
	}
	if c.At(1, 1) != 9 {
		t.Fatal("clone did not copy values")
	}
}

func TestTotal(t *testing.T) {
	g, err := FromRows([][]int{{1, -2}, {3, 4}})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if got := g.Total(); got != 6 {
		t.Fatalf("Total = %d, want 6", got)
	}
}
