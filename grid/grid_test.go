package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

func c(r, col int) grid.Coord { return grid.Coord{Row: r, Col: col} }

func newGrid(t *testing.T, rows, cols int) *grid.Grid {
	t.Helper()
	g, err := grid.New(grid.WithDimensions(rows, cols))
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// Construction and bounds
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 5},
		{"ZeroCols", 5, 0},
		{"Negative", -1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(grid.WithDimensions(tc.rows, tc.cols))
			assert.ErrorIs(t, err, grid.ErrBadDimensions)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	g, err := grid.New()
	require.NoError(t, err)
	assert.Equal(t, grid.DefaultRows, g.Rows())
	assert.Equal(t, grid.DefaultCols, g.Cols())
	_, ok := g.Start()
	assert.False(t, ok)
	_, ok = g.End()
	assert.False(t, ok)
}

func TestGetSet_OutOfBounds(t *testing.T) {
	g := newGrid(t, 3, 4)
	for _, p := range []grid.Coord{c(-1, 0), c(3, 0), c(0, 4), c(0, -1)} {
		_, err := g.Get(p)
		assert.ErrorIs(t, err, grid.ErrOutOfBounds, "Get%s", p)
		_, err = g.Set(p, grid.Wall)
		assert.ErrorIs(t, err, grid.ErrOutOfBounds, "Set%s", p)
	}
}

//----------------------------------------------------------------------------//
// Neighbor order
//----------------------------------------------------------------------------//

func TestNeighbors_Order(t *testing.T) {
	assert.Equal(t,
		[]grid.Coord{c(0, 1), c(2, 1), c(1, 0), c(1, 2)},
		grid.Neighbors(c(1, 1), 3, 3), "interior: up, down, left, right")
	assert.Equal(t,
		[]grid.Coord{c(1, 0), c(0, 1)},
		grid.Neighbors(c(0, 0), 3, 3), "top-left corner")
	assert.Equal(t,
		[]grid.Coord{c(1, 2), c(2, 1)},
		grid.Neighbors(c(2, 2), 3, 3), "bottom-right corner")
	assert.Empty(t, grid.Neighbors(c(0, 0), 1, 1))
}

//----------------------------------------------------------------------------//
// Invariants
//----------------------------------------------------------------------------//

func TestPlaceStartEnd(t *testing.T) {
	g := newGrid(t, 3, 3)

	ok, err := g.PlaceStart(c(0, 0))
	require.NoError(t, err)
	assert.True(t, ok)

	// End refused on Start.
	ok, err = g.PlaceEnd(c(0, 0))
	require.NoError(t, err)
	assert.False(t, ok)
	_, has := g.End()
	assert.False(t, has)

	ok, _ = g.PlaceEnd(c(2, 2))
	assert.True(t, ok)

	// Start refused on End.
	ok, _ = g.PlaceStart(c(2, 2))
	assert.False(t, ok)

	// Moving Start clears the old cell.
	ok, _ = g.PlaceStart(c(1, 1))
	assert.True(t, ok)
	s, _ := g.Get(c(0, 0))
	assert.Equal(t, grid.Empty, s)
	start, _ := g.Start()
	assert.Equal(t, c(1, 1), start)
}

func TestToggleWall(t *testing.T) {
	g := newGrid(t, 3, 3)
	_, _ = g.PlaceStart(c(0, 0))
	_, _ = g.PlaceEnd(c(2, 2))

	before := g.Snapshot()
	ok, err := g.ToggleWall(c(1, 1))
	require.NoError(t, err)
	assert.True(t, ok)
	s, _ := g.Get(c(1, 1))
	assert.Equal(t, grid.Wall, s)

	_, _ = g.ToggleWall(c(1, 1))
	assert.Equal(t, before, g.Snapshot(), "toggling twice restores the grid")

	// Endpoints are never walls.
	ok, _ = g.ToggleWall(c(0, 0))
	assert.False(t, ok)
	ok, _ = g.ToggleWall(c(2, 2))
	assert.False(t, ok)
	s, _ = g.Get(c(0, 0))
	assert.Equal(t, grid.Start, s)
}

func TestSet_TransientNeverOverwrites(t *testing.T) {
	g := newGrid(t, 2, 3)
	_, _ = g.PlaceStart(c(0, 0))
	_, _ = g.PlaceEnd(c(0, 2))
	_, _ = g.ToggleWall(c(0, 1))

	for _, p := range []grid.Coord{c(0, 0), c(0, 1), c(0, 2)} {
		for _, st := range []grid.CellState{grid.Visited, grid.Path} {
			ok, err := g.Set(p, st)
			require.NoError(t, err)
			assert.False(t, ok, "%s must not become %s", p, st)
		}
	}

	ok, _ := g.Set(c(1, 1), grid.Visited)
	assert.True(t, ok)
	ok, _ = g.Set(c(1, 1), grid.Path)
	assert.True(t, ok, "Path may replace Visited")
}

func TestSetWall_DragModes(t *testing.T) {
	g := newGrid(t, 2, 2)
	_, _ = g.PlaceStart(c(0, 0))

	ok, _ := g.SetWall(c(1, 1), true)
	assert.True(t, ok)
	ok, _ = g.SetWall(c(1, 1), true)
	assert.False(t, ok, "already a wall")
	ok, _ = g.SetWall(c(0, 0), true)
	assert.False(t, ok, "start is skipped")
	ok, _ = g.SetWall(c(1, 1), false)
	assert.True(t, ok)
	ok, _ = g.SetWall(c(1, 0), false)
	assert.False(t, ok, "removing from empty cell is a no-op")
}

func TestSetEmpty_ClearsEndpoint(t *testing.T) {
	g := newGrid(t, 2, 2)
	_, _ = g.PlaceStart(c(0, 0))
	_, _ = g.PlaceEnd(c(1, 1))
	_, _ = g.Set(c(0, 0), grid.Empty)
	_, _ = g.Set(c(1, 1), grid.Empty)
	_, ok := g.Start()
	assert.False(t, ok)
	_, ok = g.End()
	assert.False(t, ok)
}

//----------------------------------------------------------------------------//
// Bulk operations
//----------------------------------------------------------------------------//

func TestClearTransientAndWalls(t *testing.T) {
	g := newGrid(t, 3, 3)
	_, _ = g.PlaceStart(c(0, 0))
	_, _ = g.PlaceEnd(c(2, 2))
	_, _ = g.ToggleWall(c(1, 1))
	_, _ = g.Set(c(0, 1), grid.Visited)
	_, _ = g.Set(c(0, 2), grid.Path)

	assert.Equal(t, []grid.Coord{c(0, 1), c(0, 2)}, g.ClearTransient())
	s, _ := g.Get(c(0, 1))
	assert.Equal(t, grid.Empty, s)
	s, _ = g.Get(c(0, 2))
	assert.Equal(t, grid.Empty, s)
	assert.Equal(t, []grid.Coord{c(1, 1)}, g.Walls())

	g.ClearWalls()
	assert.Empty(t, g.Walls())
	start, ok := g.Start()
	assert.True(t, ok)
	assert.Equal(t, c(0, 0), start)

	g.Reinit()
	_, ok = g.Start()
	assert.False(t, ok)
	for _, row := range g.Snapshot() {
		for _, st := range row {
			assert.Equal(t, grid.Empty, st)
		}
	}
}

func TestWalls_RowMajor(t *testing.T) {
	g := newGrid(t, 3, 3)
	_, _ = g.ToggleWall(c(2, 0))
	_, _ = g.ToggleWall(c(0, 2))
	_, _ = g.ToggleWall(c(1, 1))
	assert.Equal(t, []grid.Coord{c(0, 2), c(1, 1), c(2, 0)}, g.Walls())
}

func TestLoad(t *testing.T) {
	g := newGrid(t, 3, 3)
	_, _ = g.Set(c(1, 0), grid.Visited)

	require.NoError(t, g.Load(c(0, 0), c(2, 2), []grid.Coord{c(1, 1)}))
	s, _ := g.Get(c(1, 0))
	assert.Equal(t, grid.Empty, s, "load leaves no transient state")
	s, _ = g.Get(c(1, 1))
	assert.Equal(t, grid.Wall, s)

	assert.Error(t, g.Load(c(0, 0), c(0, 0), nil))
	assert.Error(t, g.Load(c(0, 0), c(2, 2), []grid.Coord{c(2, 2)}))
	assert.ErrorIs(t, g.Load(c(0, 0), c(5, 5), nil), grid.ErrOutOfBounds)
	// failed loads leave the previous layout intact
	assert.Equal(t, []grid.Coord{c(1, 1)}, g.Walls())
}

func TestParseState(t *testing.T) {
	for _, st := range []grid.CellState{grid.Empty, grid.Start, grid.End, grid.Wall, grid.Visited, grid.Path} {
		got, ok := grid.ParseState(st.String())
		assert.True(t, ok)
		assert.Equal(t, st, got)
	}
	_, ok := grid.ParseState("lava")
	assert.False(t, ok)
}

func TestCoord_Manhattan(t *testing.T) {
	assert.Equal(t, 8, c(0, 0).Manhattan(c(4, 4)))
	assert.Equal(t, 3, c(2, 1).Manhattan(c(0, 2)))
}
