// File: costgrid/expand_test.go
package costgrid

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// mustGrid builds a grid from literal rows or fails the test.
func mustGrid(t testing.TB, rows [][]Cost) *CostGrid {
	t.Helper()
	g, err := New(rows)
	require.NoError(t, err)

	return g
}

// TestExpand_SingleCellWrap covers the [[8]] ×2 case: distances 0,1,1,2
// give 8, 9, 9 and a wrap to 1.
func TestExpand_SingleCellWrap(t *testing.T) {
	base := mustGrid(t, [][]Cost{{8}})

	got, err := Expand(base, 2)
	require.NoError(t, err)

	want := [][]Cost{{8, 9}, {9, 1}}
	if diff := cmp.Diff(want, got.Rows()); diff != "" {
		t.Errorf("Expand mismatch (-want +got):\n%s", diff)
	}
}

// TestExpand_FactorOneIsIdentity checks factor 1 reproduces the base exactly.
func TestExpand_FactorOneIsIdentity(t *testing.T) {
	base := mustGrid(t, [][]Cost{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	got, err := Expand(base, 1)
	require.NoError(t, err)
	require.True(t, base.Equal(got), "Expand(g,1) = \n%s\nwant\n%s", got, base)
	require.NotSame(t, base, got, "Expand must return a fresh grid")
}

// TestExpand_InvalidInput ensures bad factors and nil bases fail fast.
func TestExpand_InvalidInput(t *testing.T) {
	square := mustGrid(t, [][]Cost{{1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}})
	wide := mustGrid(t, [][]Cost{{1, 2, 3}})

	cases := []struct {
		name   string
		base   *CostGrid
		factor int
		err    error
	}{
		{"ZeroFactor", square, 0, ErrInvalidFactor},
		{"NegativeFactor", square, -1, ErrInvalidFactor},
		{"NilBase", nil, 5, ErrNilGrid},
		{"CellCountOverflow", square, 1 << 31, ErrInvalidFactor},
		{"HeightOverflow", square, math.MaxInt/4 + 1, ErrInvalidFactor},
		{"WidthOverflow", wide, math.MaxInt/3 + 1, ErrInvalidFactor},
		{"MaxIntFactor", wide, math.MaxInt, ErrInvalidFactor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got *CostGrid
			var err error
			require.NotPanics(t, func() { got, err = Expand(tc.base, tc.factor) })
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, got)
		})
	}
}

// TestExpand_DimensionsAndTiles checks shape and that each tile follows the
// tile-distance rule relative to the base.
func TestExpand_DimensionsAndTiles(t *testing.T) {
	base := mustGrid(t, [][]Cost{
		{1, 9, 5},
		{7, 3, 8},
	})
	const factor = DefaultExpandFactor

	got, err := Expand(base, factor)
	require.NoError(t, err)
	require.Equal(t, 2*factor, got.Height())
	require.Equal(t, 3*factor, got.Width())

	for i := 0; i < got.Height(); i++ {
		for j := 0; j < got.Width(); j++ {
			src, _ := base.At(Cell{Row: i % 2, Col: j % 3})
			d := i/2 + j/3
			want := Cost((int(src)-1+d)%9 + 1)
			v, err := got.At(Cell{Row: i, Col: j})
			require.NoError(t, err)
			require.Equal(t, want, v, "cell (%d,%d) tile distance %d", i, j, d)
		}
	}
}

// TestExpand_DoesNotMutateBase guards the purity of Expand.
func TestExpand_DoesNotMutateBase(t *testing.T) {
	base := mustGrid(t, [][]Cost{{9, 1}, {2, 8}})
	before := base.Rows()

	_, err := Expand(base, 3)
	require.NoError(t, err)
	if diff := cmp.Diff(before, base.Rows()); diff != "" {
		t.Errorf("base changed (-before +after):\n%s", diff)
	}
}

// TestWrapCost_StaysInRange sweeps every valid cost and a range of distances.
func TestWrapCost_StaysInRange(t *testing.T) {
	for v := MinCost; v <= MaxCost; v++ {
		for d := 0; d <= 40; d++ {
			got := wrapCost(v, d)
			if got < MinCost || got > MaxCost {
				t.Fatalf("wrapCost(%d,%d) = %d escapes [1,9]", v, d, got)
			}
			if d == 0 && got != v {
				t.Fatalf("wrapCost(%d,0) = %d; want identity", v, got)
			}
		}
	}
	// A 9 wraps to 1 after one step; a period of 9 returns the original value.
	require.Equal(t, Cost(1), wrapCost(9, 1))
	require.Equal(t, Cost(4), wrapCost(4, 9))
}

// TestWrapCost_ZeroCost documents the free-entry cell under tiling.
func TestWrapCost_ZeroCost(t *testing.T) {
	require.Equal(t, Cost(0), wrapCost(0, 0))
	require.Equal(t, Cost(1), wrapCost(0, 1))
	require.Equal(t, Cost(8), wrapCost(0, 8))
	require.Equal(t, Cost(9), wrapCost(0, 9))
}
