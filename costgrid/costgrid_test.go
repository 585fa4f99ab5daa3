package costgrid_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/riskgrid/costgrid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged or out-of-range inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]costgrid.Cost
		err  error
	}{
		{"NilRows", nil, costgrid.ErrEmptyGrid},
		{"EmptyRows", [][]costgrid.Cost{}, costgrid.ErrEmptyGrid},
		{"EmptyCols", [][]costgrid.Cost{{}}, costgrid.ErrEmptyGrid},
		{"NonRectangular", [][]costgrid.Cost{{1, 2}, {3}}, costgrid.ErrNonRectangular},
		{"CostTooHigh", [][]costgrid.Cost{{1, 10}}, costgrid.ErrCostRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := costgrid.New(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNew_CopiesInput ensures later mutation of the source rows is not observed.
func TestNew_CopiesInput(t *testing.T) {
	rows := [][]costgrid.Cost{{1, 2}, {3, 4}}
	g, err := costgrid.New(rows)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	rows[0][0] = 9

	if v, _ := g.At(costgrid.Cell{Row: 0, Col: 0}); v != 1 {
		t.Errorf("At(0,0) = %d after source mutation; want 1", v)
	}

	out := g.Rows()
	out[1][1] = 9
	if v, _ := g.At(costgrid.Cell{Row: 1, Col: 1}); v != 4 {
		t.Errorf("At(1,1) = %d after Rows() mutation; want 4", v)
	}
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := costgrid.New([][]costgrid.Cost{
		{1, 2, 3},
		{4, 5, 6},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := []costgrid.Cell{{0, 0}, {1, 2}, {1, 1}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	invalid := []costgrid.Cell{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
	}
}

//----------------------------------------------------------------------------//
// Lookup Tests
//----------------------------------------------------------------------------//

// TestAt returns stored costs and reports ErrOutOfBounds outside the grid.
func TestAt(t *testing.T) {
	g, _ := costgrid.New([][]costgrid.Cost{
		{1, 2, 3},
		{4, 5, 6},
	})

	v, err := g.At(costgrid.Cell{Row: 1, Col: 2})
	if err != nil || v != 6 {
		t.Errorf("At(1,2) = %d, %v; want 6, nil", v, err)
	}

	for _, c := range []costgrid.Cell{{2, 0}, {0, -1}, {-5, 7}} {
		if _, err := g.At(c); !errors.Is(err, costgrid.ErrOutOfBounds) {
			t.Errorf("At(%v) error = %v; want ErrOutOfBounds", c, err)
		}
	}
}

// TestIndexRoundTrip checks Index and CellOf are inverse over every cell.
func TestIndexRoundTrip(t *testing.T) {
	g, _ := costgrid.Uniform(3, 4, 1)
	for i := 0; i < g.Len(); i++ {
		c := g.CellOf(i)
		if !g.InBounds(c) {
			t.Fatalf("CellOf(%d) = %v is out of bounds", i, c)
		}
		if got := g.Index(c); got != i {
			t.Errorf("Index(CellOf(%d)) = %d", i, got)
		}
	}
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors counts and orders neighbours for corner, edge and interior cells.
func TestNeighbors(t *testing.T) {
	g, _ := costgrid.Uniform(3, 3, 1)
	cases := []struct {
		name string
		cell costgrid.Cell
		want []costgrid.Cell
	}{
		{"TopLeftCorner", costgrid.Cell{0, 0}, []costgrid.Cell{{0, 1}, {1, 0}}},
		{"BottomRightCorner", costgrid.Cell{2, 2}, []costgrid.Cell{{1, 2}, {2, 1}}},
		{"TopEdge", costgrid.Cell{0, 1}, []costgrid.Cell{{0, 2}, {1, 1}, {0, 0}}},
		{"LeftEdge", costgrid.Cell{1, 0}, []costgrid.Cell{{0, 0}, {1, 1}, {2, 0}}},
		{"Interior", costgrid.Cell{1, 1}, []costgrid.Cell{{0, 1}, {1, 2}, {2, 1}, {1, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, g.Neighbors(tc.cell)); diff != "" {
				t.Errorf("Neighbors(%v) mismatch (-want +got):\n%s", tc.cell, diff)
			}
		})
	}
}

// TestNeighbors_SingleRow verifies a 1-wide strip only links along its length.
func TestNeighbors_SingleRow(t *testing.T) {
	g, _ := costgrid.Uniform(1, 3, 1)
	if n := g.Neighbors(costgrid.Cell{0, 1}); len(n) != 2 {
		t.Errorf("middle of 1×3 has %d neighbours; want 2", len(n))
	}
	one, _ := costgrid.Uniform(1, 1, 5)
	if n := one.Neighbors(costgrid.Cell{0, 0}); len(n) != 0 {
		t.Errorf("1×1 cell has %d neighbours; want 0", len(n))
	}
}

// TestAppendNeighbors_ReusesBuffer checks dst is extended in place.
func TestAppendNeighbors_ReusesBuffer(t *testing.T) {
	g, _ := costgrid.Uniform(3, 3, 1)
	buf := make([]costgrid.Cell, 0, 4)
	buf = g.AppendNeighbors(buf[:0], costgrid.Cell{1, 1})
	if len(buf) != 4 || cap(buf) != 4 {
		t.Fatalf("len=%d cap=%d; want 4/4", len(buf), cap(buf))
	}
	buf = g.AppendNeighbors(buf[:0], costgrid.Cell{0, 0})
	if len(buf) != 2 {
		t.Errorf("len=%d after reuse; want 2", len(buf))
	}
}

//----------------------------------------------------------------------------//
// Equal / String Tests
//----------------------------------------------------------------------------//

func TestEqualAndString(t *testing.T) {
	a, _ := costgrid.New([][]costgrid.Cost{{1, 2}, {3, 0}})
	b, _ := costgrid.ParseString("12\n30\n")
	c, _ := costgrid.ParseString("123\n300")

	if !a.Equal(b) {
		t.Errorf("a.Equal(b) = false; want true")
	}
	if a.Equal(c) {
		t.Errorf("a.Equal(c) = true for different widths")
	}
	if a.Equal(nil) {
		t.Errorf("a.Equal(nil) = true")
	}
	if got, want := a.String(), "12\n30"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}
