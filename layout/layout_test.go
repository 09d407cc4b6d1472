package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/layout"
)

func c(r, col int) grid.Coord { return grid.Coord{Row: r, Col: col} }

func ptr(p grid.Coord) *grid.Coord { return &p }

func newGrid(t *testing.T, rows, cols int) *grid.Grid {
	t.Helper()
	g, err := grid.New(grid.WithDimensions(rows, cols))
	require.NoError(t, err)
	return g
}

func TestExport_Incomplete(t *testing.T) {
	g := newGrid(t, 3, 3)
	_, err := layout.Export(g)
	assert.ErrorIs(t, err, layout.ErrIncompleteLayout)

	_, _ = g.PlaceStart(c(0, 0))
	_, err = layout.Export(g)
	assert.ErrorIs(t, err, layout.ErrIncompleteLayout)
}

func TestExport_RowMajorWalls(t *testing.T) {
	g := newGrid(t, 3, 3)
	_, _ = g.PlaceStart(c(0, 0))
	_, _ = g.PlaceEnd(c(2, 2))
	_, _ = g.ToggleWall(c(2, 1))
	_, _ = g.ToggleWall(c(0, 1))
	_, _ = g.Set(c(1, 0), grid.Visited)

	l, err := layout.Export(g)
	require.NoError(t, err)
	assert.Equal(t, c(0, 0), *l.StartNode)
	assert.Equal(t, c(2, 2), *l.EndNode)
	assert.Equal(t, [][]int{{0, 1}, {2, 1}}, l.Walls)

	data, err := layout.Encode(l, layout.JSON)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"startNode":{"row":0,"col":0},"endNode":{"row":2,"col":2},"walls":[[0,1],[2,1]]}`,
		string(data))
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []layout.Format{layout.JSON, layout.YAML} {
		t.Run(string(f), func(t *testing.T) {
			src := newGrid(t, 4, 6)
			require.NoError(t, src.Load(c(3, 0), c(0, 5), []grid.Coord{c(0, 0), c(1, 2), c(2, 2), c(3, 5)}))
			_, _ = src.Set(c(1, 1), grid.Path)

			l, err := layout.Export(src)
			require.NoError(t, err)
			data, err := layout.Encode(l, f)
			require.NoError(t, err)
			back, err := layout.Decode(data, f)
			require.NoError(t, err)

			dst := newGrid(t, 4, 6)
			_, _ = dst.Set(c(2, 4), grid.Visited)
			require.NoError(t, layout.Import(back, dst))

			src.ClearTransient()
			assert.Equal(t, src.Snapshot(), dst.Snapshot())
		})
	}
}

func TestImport_Invalid(t *testing.T) {
	cases := []struct {
		name string
		l    *layout.Layout
	}{
		{"Nil", nil},
		{"MissingStart", &layout.Layout{EndNode: ptr(c(1, 1))}},
		{"MissingEnd", &layout.Layout{StartNode: ptr(c(1, 1))}},
		{"StartOutside", &layout.Layout{StartNode: ptr(c(-1, 0)), EndNode: ptr(c(1, 1))}},
		{"EndOutside", &layout.Layout{StartNode: ptr(c(0, 0)), EndNode: ptr(c(3, 0))}},
		{"SameCell", &layout.Layout{StartNode: ptr(c(1, 1)), EndNode: ptr(c(1, 1))}},
		{"WallOutside", &layout.Layout{StartNode: ptr(c(0, 0)), EndNode: ptr(c(2, 2)), Walls: [][]int{{0, 3}}}},
		{"WallOnStart", &layout.Layout{StartNode: ptr(c(0, 0)), EndNode: ptr(c(2, 2)), Walls: [][]int{{0, 0}}}},
		{"WallOnEnd", &layout.Layout{StartNode: ptr(c(0, 0)), EndNode: ptr(c(2, 2)), Walls: [][]int{{1, 1}, {2, 2}}}},
		{"WallArity", &layout.Layout{StartNode: ptr(c(0, 0)), EndNode: ptr(c(2, 2)), Walls: [][]int{{1}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newGrid(t, 3, 3)
			require.NoError(t, g.Load(c(0, 2), c(2, 0), []grid.Coord{c(1, 1)}))
			before := g.Snapshot()

			err := layout.Import(tc.l, g)
			assert.ErrorIs(t, err, layout.ErrInvalidLayout)
			assert.Equal(t, before, g.Snapshot(), "grid untouched on failure")
		})
	}
}

func TestDecode(t *testing.T) {
	_, err := layout.Decode([]byte(`{"startNode":`), layout.JSON)
	assert.ErrorIs(t, err, layout.ErrInvalidLayout)

	_, err = layout.Decode([]byte(`{"startNode":{"row":0,"col":0},"bogus":1}`), layout.JSON)
	assert.ErrorIs(t, err, layout.ErrInvalidLayout)

	_, err = layout.Decode([]byte("startNode: [1"), layout.YAML)
	assert.ErrorIs(t, err, layout.ErrInvalidLayout)

	_, err = layout.Decode(nil, "xml")
	assert.ErrorIs(t, err, layout.ErrUnknownFormat)

	l, err := layout.Decode([]byte("startNode: {row: 0, col: 1}\nendNode: {row: 2, col: 2}\nwalls: [[1, 1]]\n"), layout.YAML)
	require.NoError(t, err)
	assert.Equal(t, c(0, 1), *l.StartNode)
	assert.Equal(t, [][]int{{1, 1}}, l.Walls)

	// a missing endNode decodes but fails validation
	l, err = layout.Decode([]byte(`{"startNode":{"row":0,"col":0},"walls":[]}`), layout.JSON)
	require.NoError(t, err)
	assert.ErrorIs(t, layout.Import(l, newGrid(t, 2, 2)), layout.ErrInvalidLayout)
}

func TestParseFormat(t *testing.T) {
	f, err := layout.ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, layout.YAML, f)
	f, err = layout.ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, layout.JSON, f)
	_, err = layout.ParseFormat("toml")
	assert.ErrorIs(t, err, layout.ErrUnknownFormat)
}
